package req

import (
	"io/ioutil"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBodyReplaysBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/Project", strings.NewReader("user=alice"))

	bodyBytes, err := ReadBody(r, 64)
	require.NoError(t, err)
	assert.Equal(t, "user=alice", string(bodyBytes))

	again, err := ioutil.ReadAll(r.Body)
	require.NoError(t, err)
	assert.Equal(t, "user=alice", string(again))
}

func TestReadBodyLimit(t *testing.T) {
	r := httptest.NewRequest("POST", "/Project", strings.NewReader(strings.Repeat("a", 65)))

	_, err := ReadBody(r, 64)
	assert.Equal(t, ErrBodyTooLarge, err)
}

func TestReadBodyExactlyAtLimit(t *testing.T) {
	r := httptest.NewRequest("POST", "/Project", strings.NewReader(strings.Repeat("a", 64)))

	bodyBytes, err := ReadBody(r, 64)
	require.NoError(t, err)
	assert.Len(t, bodyBytes, 64)
}
