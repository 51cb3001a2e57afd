package extract_test

import (
	"testing"

	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/extract"
	"github.com/stretchr/testify/assert"
)

func keywordAccumulator() *extract.Accumulator {
	return &extract.Accumulator{Classifier: keywordClassifier(), TrimContact: true}
}

func TestAccumulator_ClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		kind  extract.LineKind
		key   bulletin.FieldKey
		value string
	}{
		{"colon header with marker", "ㅇ 대상 : 중구 거주 외국인", extract.LineKeyValue, bulletin.FieldTarget, "중구 거주 외국인"},
		{"full-width colon", "□ 장소：구청 강당", extract.LineKeyValue, bulletin.FieldLocation, "구청 강당"},
		{"clock colon is not a delimiter", "운영시간 : 10:00~18:00", extract.LineKeyValue, bulletin.FieldPeriod, "10:00~18:00"},
		{"clock colon alone is not a header", "매일 10:00 개장", extract.LinePlain, "", ""},
		{"dash header", "교육 장소 - 구청 강당", extract.LineKeyValue, bulletin.FieldLocation, "구청 강당"},
		{"bare header", "ㅇ 신청방법", extract.LineBareHeader, bulletin.FieldMethod, ""},
		{"spaced bare header", "신청 방법", extract.LineBareHeader, bulletin.FieldMethod, ""},
		{"sentence with a keyword inside", "본 사업은 외국인 대상으로 진행합니다", extract.LinePlain, "", ""},
		{"sentence opening with a keyword", "문의 사항은 홈페이지 게시판을 이용해 주세요", extract.LinePlain, "", ""},
		{"annotation is never a header", "※ 신청 : 온라인", extract.LinePlain, "", ""},
		{"numbered entry", "1. 온라인 접수", extract.LineBullet, "", ""},
		{"prose", "자세한 사항은 홈페이지 참고", extract.LinePlain, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := keywordAccumulator().ClassifyLine(tt.line)

			assert.Equal(t, tt.kind, got.Kind, got.Kind.String())
			assert.Equal(t, tt.key, got.Key)
			assert.Equal(t, tt.value, got.Value)
			assert.Equal(t, tt.line, got.Text)
		})
	}
}

func TestAccumulator_ClassifyLine_alias(t *testing.T) {
	t.Parallel()

	a := &extract.Accumulator{Classifier: aliasClassifier()}

	t.Run("header with inline value", func(t *testing.T) {
		t.Parallel()

		got := a.ClassifyLine("문의 02-3396-4000")

		assert.Equal(t, extract.LineKeyValue, got.Kind)
		assert.Equal(t, bulletin.FieldContact, got.Key)
		assert.Equal(t, "02-3396-4000", got.Value)
	})

	t.Run("sentence is plain", func(t *testing.T) {
		t.Parallel()

		got := a.ClassifyLine("본 사업은 외국인 대상으로 진행합니다")

		assert.Equal(t, extract.LinePlain, got.Kind)
	})
}

func TestAccumulator_Accumulate(t *testing.T) {
	t.Parallel()

	t.Run("locks method section until a different header", func(t *testing.T) {
		t.Parallel()

		strategies := map[string]extract.Classifier{
			"keyword": keywordClassifier(),
			"alias":   aliasClassifier(),
		}
		for name, c := range strategies {
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				a := &extract.Accumulator{Classifier: c}

				fields := a.Accumulate([]string{
					"ㅇ 신청방법",
					"1. 온라인 접수",
					"2. 방문 접수",
					"ㅇ 장소 : 중구청 2층",
				})

				assert.Equal(t, "1. 온라인 접수 / 2. 방문 접수", fields[bulletin.FieldMethod])
				assert.Equal(t, "중구청 2층", fields[bulletin.FieldLocation])
			})
		}
	})

	t.Run("locked section keeps annotations and same-key headers verbatim", func(t *testing.T) {
		t.Parallel()

		fields := keywordAccumulator().Accumulate([]string{
			"ㅇ 신청방법 : 온라인",
			"※ 방문 신청 불가",
			"접수 : 주민센터",
			"ㅇ 문의 : 02-120",
		})

		assert.Equal(t, "온라인 / ※ 방문 신청 불가 / 접수 : 주민센터", fields[bulletin.FieldMethod])
		assert.Equal(t, "02-120", fields[bulletin.FieldContact])
	})

	t.Run("sentences with keywords go in verbatim", func(t *testing.T) {
		t.Parallel()

		fields := keywordAccumulator().Accumulate([]string{
			"본 사업은 외국인 대상으로 진행합니다",
			"자세한 내용은 홈페이지 참조",
		})

		assert.Equal(t, "본 사업은 외국인 대상으로 진행합니다 / 자세한 내용은 홈페이지 참조", fields[bulletin.FieldContent])
		assert.NotContains(t, fields, bulletin.FieldTarget)
	})

	t.Run("sentences with keywords do not unlock a method section", func(t *testing.T) {
		t.Parallel()

		fields := keywordAccumulator().Accumulate([]string{
			"ㅇ 신청방법",
			"1. 온라인",
			"자세한 내용은 홈페이지 참조",
			"방문 시 신분증 지참",
		})

		assert.Equal(t, "1. 온라인 / 자세한 내용은 홈페이지 참조 / 방문 시 신분증 지참", fields[bulletin.FieldMethod])
		assert.NotContains(t, fields, bulletin.FieldContent)
	})

	t.Run("lines before any header go to content", func(t *testing.T) {
		t.Parallel()

		fields := keywordAccumulator().Accumulate([]string{
			"센터 안내입니다",
			"ㅇ 대상 : 주민",
		})

		assert.Equal(t, "센터 안내입니다", fields[bulletin.FieldContent])
		assert.Equal(t, "주민", fields[bulletin.FieldTarget])
	})

	t.Run("bare header collects following lines", func(t *testing.T) {
		t.Parallel()

		fields := keywordAccumulator().Accumulate([]string{
			"ㅇ 문의",
			"중구청 복지과 02-3396-4000",
		})

		assert.Equal(t, "중구청 복지과 02-3396-4000", fields[bulletin.FieldContact])
	})

	t.Run("trims contact after phone numbers", func(t *testing.T) {
		t.Parallel()

		fields := keywordAccumulator().Accumulate([]string{
			"ㅇ 문의 : 복지정책과 02-1234-5678 / 02-2345-6789 담당자 확인",
		})

		assert.Equal(t, "복지정책과 02-1234-5678 / 02-2345-6789", fields[bulletin.FieldContact])
	})

	t.Run("includes header in value when asked", func(t *testing.T) {
		t.Parallel()

		a := &extract.Accumulator{Classifier: keywordClassifier(), IncludeKeyInValue: true}

		fields := a.Accumulate([]string{"ㅇ 대상 : 주민", "교육 장소 - 강당"})

		assert.Equal(t, "대상 : 주민", fields[bulletin.FieldTarget])
		assert.Equal(t, "교육 장소 - 강당", fields[bulletin.FieldLocation])
	})

	t.Run("no lines yield no fields", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, keywordAccumulator().Accumulate(nil))
	})
}

func TestCleanContact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cuts at bracket", "02-3396-4000 [만족도]", "02-3396-4000"},
		{"cuts at attachment", "복지과 안내문.hwp 다운로드", "복지과 안내문"},
		{"keeps text without phone", "구청 복지과", "구청 복지과"},
		{"cuts after phone run", "02-1234-5678 내선 2번", "02-1234-5678"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, extract.CleanContact(tt.in))
		})
	}
}
