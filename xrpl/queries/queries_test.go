package queries

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelAuthorizeExactlyOneOf(t *testing.T) {
	req := NewChannelAuthorize("5DB01B7FFED6B67E6B0414DED11E051D2EE2B7619CE0EAA6286D67A3A4D5BDB3", "1000000")
	assert.Error(t, req.Validate())

	req.Seed = "shseed"
	assert.NoError(t, req.Validate())

	req.Secret = "ssecret"
	assert.Error(t, req.Validate())
}

func TestAccountInfoRequiresAccount(t *testing.T) {
	req := NewAccountInfo("")
	assert.Error(t, req.Validate())

	req.Account = "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp"
	assert.NoError(t, req.Validate())
	assert.Equal(t, "account_info", req.GetCommand())
}

func TestPathFindSubcommands(t *testing.T) {
	create := NewPathFindCreate("", "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw", "1000000")
	assert.Error(t, create.Validate())

	close := NewPathFindClose()
	assert.NoError(t, close.Validate())

	unknown := &PathFind{Command: "path_find", Subcommand: "bogus"}
	err := unknown.Validate()
	require.Error(t, err)
	assert.Equal(t, ErrUnimplemented, err.(*Error).Kind)
}

func TestResponseIsSuccess(t *testing.T) {
	r := &Response{Status: "success", Result: json.RawMessage(`{"ledger_index":1}`)}
	assert.True(t, r.IsSuccess())

	errResp := &Response{Status: "error", Error: "noAccount"}
	assert.False(t, errResp.IsSuccess())
}

func TestDecodeAccountInfoResult(t *testing.T) {
	r := &Response{
		Status: "success",
		Result: json.RawMessage(`{"account_data":{"Account":"rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp","Balance":"1000000","Flags":0,"OwnerCount":0,"Sequence":4}}`),
	}
	var result AccountInfoResult
	require.NoError(t, r.DecodeResult(&result))
	assert.Equal(t, uint32(4), result.AccountData.Sequence)
}
