package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTipNumberedWithSubs(t *testing.T) {
	tip := "1. 정보보안 정책 문서 작성\n- 회사 규모에 맞는 템플릿 사용\n- 경영진 승인 필수\n2. 전 직원 공지\n• 사내 위키에 게시"
	steps := ParseTip(tip)

	require.Len(t, steps, 2)
	require.Equal(t, "1. 정보보안 정책 문서 작성", steps[0].Text)
	require.Equal(t, []string{"- 회사 규모에 맞는 템플릿 사용", "- 경영진 승인 필수"}, steps[0].Sub)
	require.Equal(t, []string{"• 사내 위키에 게시"}, steps[1].Sub)
}

func TestParseTipSkipsEmptyLines(t *testing.T) {
	steps := ParseTip("1. first\n\n\n2. second\n")
	require.Len(t, steps, 2)
	require.Empty(t, steps[0].Sub)
}

// A sub-item with no preceding numbered step becomes its own step
// instead of being dropped.
func TestParseTipOrphanSubItem(t *testing.T) {
	steps := ParseTip("- orphan\n1. step")
	require.Len(t, steps, 2)
	require.Equal(t, "- orphan", steps[0].Text)
	require.Empty(t, steps[0].Sub)
}

func TestParseTipPlainLines(t *testing.T) {
	steps := ParseTip("just a sentence\nanother one")
	require.Len(t, steps, 2)
}

func TestParseTipEmpty(t *testing.T) {
	require.Empty(t, ParseTip(""))
}

// Every multi-line tip in the catalog must survive the parser without
// losing lines.
func TestParseTipCatalogRoundTrip(t *testing.T) {
	for _, it := range Items() {
		if it.Tip == "" {
			continue
		}
		steps := ParseTip(it.Tip)
		require.NotEmpty(t, steps, "tip of %s parsed to nothing", it.ID)
	}
}
