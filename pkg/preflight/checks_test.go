package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestOpen_DerivesFormatAndHeader(t *testing.T) {
	path := writeFixture(t, "book.epub", []byte("PK\x03\x04rest-of-zip"))

	file, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, interfaces.FormatEPUB, file.Format)
	assert.Equal(t, "book.epub", file.Name)
	assert.Equal(t, int64(15), file.Size)
	assert.True(t, len(file.Header) > 0)
}

func TestOpen_RejectsUnknownExtension(t *testing.T) {
	path := writeFixture(t, "notes.txt", []byte("hello"))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestFormatCheck_MismatchedContent(t *testing.T) {
	path := writeFixture(t, "fake.pdf", []byte("PK\x03\x04this-is-a-zip"))
	file, err := Open(path)
	require.NoError(t, err)

	result, err := NewFormatCheck().Run(context.Background(), file)
	require.NoError(t, err)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, interfaces.SeverityCritical, result.Findings[0].Severity)
}

func TestFormatCheck_ValidPDF(t *testing.T) {
	path := writeFixture(t, "paper.pdf", []byte("%PDF-1.7 content"))
	file, err := Open(path)
	require.NoError(t, err)

	result, err := NewFormatCheck().Run(context.Background(), file)
	require.NoError(t, err)
	assert.Empty(t, result.Findings)
}

func TestSizeCheck_EmptyAndOversize(t *testing.T) {
	empty, err := Open(writeFixture(t, "empty.epub", nil))
	require.NoError(t, err)

	result, err := NewSizeCheck().Run(context.Background(), empty)
	require.NoError(t, err)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, interfaces.SeverityCritical, result.Findings[0].Severity)

	big, err := Open(writeFixture(t, "big.epub", []byte("PK\x03\x04abcdef")))
	require.NoError(t, err)

	result, err = NewSizeCheck(WithMaxSize(4)).Run(context.Background(), big)
	require.NoError(t, err)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, interfaces.SeveritySerious, result.Findings[0].Severity)
}

func TestEngine_RunAndBlockers(t *testing.T) {
	path := writeFixture(t, "broken.pdf", []byte("not a pdf at all"))
	file, err := Open(path)
	require.NoError(t, err)

	engine := NewEngine(DefaultRegistry())
	results, err := engine.Run(context.Background(), file)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	blockers := Blockers(results)
	require.Len(t, blockers, 1)
	assert.Equal(t, "format", blockers[0].Check)
}

func TestRegistry_RejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewFormatCheck()))
	assert.Error(t, r.Register(NewFormatCheck()))
}
