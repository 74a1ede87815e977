package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	err := PrintJSON(&buf, map[string]int{"units_sold": 4})

	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"units_sold\": 4\n}\n", buf.String())
}

func TestPrintJSON_Unsupported(t *testing.T) {
	var buf bytes.Buffer

	err := PrintJSON(&buf, make(chan int))

	assert.ErrorContains(t, err, "marshalling JSON")
	assert.Empty(t, buf.String())
}
