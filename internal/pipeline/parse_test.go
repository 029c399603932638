package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexible_JSONArray(t *testing.T) {
	data := []byte(`[{"name":"Go","level":3},{"name":"Rust","level":1}]`)

	doc, err := ParseFlexible(data)
	require.NoError(t, err)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Go", doc.Rows[0].Get("name"))
	assert.Equal(t, "3", doc.Rows[0].Get("level"))
}

func TestParseFlexible_NestedObjectSingleArray(t *testing.T) {
	data := []byte(`{"exportedAt":"2025-01-01","skills":[{"name":"Go"}]}`)

	doc, err := ParseFlexible(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Choices)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Go", doc.Rows[0].Get("name"))
}

func TestParseFlexible_NestedObjectMultipleArraysYieldsChoices(t *testing.T) {
	data := []byte(`{"skills":[{"name":"Go"}],"members":[{"email":"a@b.c"},{"email":"d@e.f"}]}`)

	doc, err := ParseFlexible(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Rows)
	require.Len(t, doc.Choices, 2)
	// Key-sorted, so the same upload always previews the same way.
	assert.Equal(t, "members", doc.Choices[0].Key)
	assert.Equal(t, "skills", doc.Choices[1].Key)
	assert.Equal(t, 2, doc.Choices[0].Size)

	rows, err := SelectArray(data, "members")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a@b.c", rows[0].Get("email"))
}

func TestParseFlexible_JSONLines(t *testing.T) {
	data := []byte("{\"name\":\"Go\"}\n{\"name\":\"Rust\"}\n")

	doc, err := ParseFlexible(data)
	require.NoError(t, err)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Rust", doc.Rows[1].Get("name"))
}

func TestParseFlexible_CSVAndTSV(t *testing.T) {
	csvDoc, err := ParseFlexible([]byte("name,level\nGo,3\n"))
	require.NoError(t, err)
	require.Len(t, csvDoc.Rows, 1)
	assert.Equal(t, "3", csvDoc.Rows[0].Get("level"))

	tsvDoc, err := ParseFlexible([]byte("name\tlevel\nGo\t3\n"))
	require.NoError(t, err)
	require.Len(t, tsvDoc.Rows, 1)
	assert.Equal(t, "Go", tsvDoc.Rows[0].Get("name"))
}

func TestParseFlexible_PlainTextFallback(t *testing.T) {
	doc, err := ParseFlexible([]byte("just some notes about the team"))
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	assert.Contains(t, doc.Rows[0].Get("content"), "notes about the team")
}

func TestParseFlexible_EmptyIsAnError(t *testing.T) {
	_, err := ParseFlexible([]byte("   \n  "))
	assert.ErrorIs(t, err, ErrUnparseableFile)
}

func TestParseTable_UnsupportedExtension(t *testing.T) {
	_, err := ParseTable("upload.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrUnparseableFile)
}

func TestRowGet_CaseInsensitiveColumnLookup(t *testing.T) {
	row := Row{"Corporate Email": "a@b.c"}
	assert.Equal(t, "a@b.c", row.Get("corporate email"))
	assert.Equal(t, "", row.Get("missing"))
}
