package chainclient

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Warchant/interbtc-clients/types"
)

// The BTC relay reports rejections by module error name. JSON-RPC flattens
// them to strings, so recognition is by substring.
var remoteErrorMarks = []struct {
	substr string
	mark   error
}{
	{substr: "AlreadyInitialized", mark: types.ErrAlreadyInitialized},
	{substr: "DuplicateBlock", mark: types.ErrBlockExists},
	{substr: "PrevBlock", mark: types.ErrMissingParent},
	{substr: "InvalidHeaderSize", mark: types.ErrInvalidHeader},
	{substr: "InvalidHeader", mark: types.ErrInvalidHeader},
}

// classifyRemoteError maps a failed relay call onto the shared error
// taxonomy. Unrecognized failures pass through unchanged; cancellation is
// never reinterpreted.
func classifyRemoteError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}

	msg := err.Error()
	for _, m := range remoteErrorMarks {
		if strings.Contains(msg, m.substr) {
			return errors.Mark(err, m.mark)
		}
	}

	return err
}
