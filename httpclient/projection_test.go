// httpclient/projection_test.go
package httpclient

import (
	"encoding/json"
	"errors"
	"testing"

	pdderrors "github.com/deploymenttheory/go-api-sdk-yandexpdd/errors"
	"github.com/deploymenttheory/go-api-sdk-yandexpdd/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionRuleApply(t *testing.T) {
	env := response.Envelope{"success": "ok", "uid": json.Number("42")}

	full, err := ProjectFull().Apply("email/add", env)
	require.NoError(t, err)
	assert.Equal(t, env, full)

	constant, err := ProjectConstant(true).Apply("email/del", env)
	require.NoError(t, err)
	assert.Equal(t, true, constant)

	uid, err := ProjectField("uid").Apply("email/add", env)
	require.NoError(t, err)
	assert.Equal(t, json.Number("42"), uid)

	_, err = ProjectField("record").Apply("dns/add", env)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pdderrors.ErrDecode))
}

func TestProjectionRuleString(t *testing.T) {
	assert.Equal(t, "full", ProjectFull().String())
	assert.Equal(t, "constant(true)", ProjectConstant(true).String())
	assert.Equal(t, "field(uid)", ProjectField("uid").String())
}
