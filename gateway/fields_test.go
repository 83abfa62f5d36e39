package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSetEncode_DropsBlankValues(t *testing.T) {
	fs := NewFieldSet()
	fs.Set("trnAmount", "10.00")
	fs.Set("trnComments", "")
	fs.Set("trnOrderNumber", "1234")
	fs.Set("username", "")

	encoded := fs.Encode()

	assert.Equal(t, "trnAmount=10.00&trnOrderNumber=1234", encoded)
	assert.NotContains(t, encoded, "trnComments")
	assert.NotContains(t, encoded, "username")
}

func TestFieldSetEncode_EscapesValues(t *testing.T) {
	fs := NewFieldSet()
	fs.Set("ordName", "xiaobo zzz")
	fs.Set("ref1", "reference&one=two")

	encoded := fs.Encode()

	assert.Equal(t, "ordName=xiaobo+zzz&ref1=reference%26one%3Dtwo", encoded)
}

func TestFieldSetEncode_PreservesInsertionOrder(t *testing.T) {
	fs := NewFieldSet()
	fs.Set("c", "3")
	fs.Set("a", "1")
	fs.Set("b", "2")

	assert.Equal(t, "c=3&a=1&b=2", fs.Encode())
}

func TestFieldSetSet_ReplaceKeepsPosition(t *testing.T) {
	fs := NewFieldSet()
	fs.Set("rptNoFile", "1")
	fs.Set("rptVersion", "1.6")
	fs.Set("rptNoFile", "0")

	assert.Equal(t, "rptNoFile=0&rptVersion=1.6", fs.Encode())
	assert.Equal(t, 2, fs.Len())
}

func TestFieldSetEncode_Empty(t *testing.T) {
	fs := NewFieldSet()
	assert.Equal(t, "", fs.Encode())
	assert.False(t, strings.Contains(fs.Encode(), "&"))
}
