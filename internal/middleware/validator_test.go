package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateControlID(t *testing.T) {
	for _, id := range []string{"4.1", "9.2.1", "10.2", "A.5.23", "A.8.1"} {
		require.NoError(t, ValidateControlID(id), id)
	}
	for _, id := range []string{"", "abc", "A.", "A.5.23.1.1", "5", "A5.1"} {
		require.Error(t, ValidateControlID(id), id)
	}
}

func TestValidateFilename(t *testing.T) {
	require.NoError(t, ValidateFilename("policy.pdf"))
	require.NoError(t, ValidateFilename("정보보안 정책 v2.docx"))

	require.Error(t, ValidateFilename(""))
	require.Error(t, ValidateFilename("   "))
	require.Error(t, ValidateFilename("../../etc/passwd"))
	require.Error(t, ValidateFilename("a\x00b.pdf"))
	require.Error(t, ValidateFilename("a;rm -rf.pdf"))
}

func TestValidateContentType(t *testing.T) {
	require.NoError(t, ValidateContentType(""))
	require.NoError(t, ValidateContentType("application/pdf"))
	require.NoError(t, ValidateContentType("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))

	require.Error(t, ValidateContentType("pdf"))
	require.Error(t, ValidateContentType("application/pdf; charset=utf-8"))
}

func TestValidateOrgID(t *testing.T) {
	require.NoError(t, ValidateOrgID("acme-corp_01"))
	require.Error(t, ValidateOrgID(""))
	require.Error(t, ValidateOrgID("acme corp"))
}

func TestSanitizeString(t *testing.T) {
	require.Equal(t, "hello", SanitizeString("  hello\x00 "))
	require.Equal(t, "a\nb", SanitizeString("a\nb\x07"))
}
