package extract

import "github.com/fwojciec/bulletin"

// DefaultMaxKeyLength is the longest normalized header, in runes.
const DefaultMaxKeyLength = 10

// DefaultKeywordGroups returns the keyword table in priority order.
func DefaultKeywordGroups() []bulletin.KeywordGroup {
	return []bulletin.KeywordGroup{
		{Key: bulletin.FieldTarget, Words: []string{"대상", "자격"}},
		{Key: bulletin.FieldPeriod, Words: []string{"기간", "일시", "시간", "기한", "일정"}},
		{Key: bulletin.FieldPurchaseMethod, Words: []string{"구입방법"}},
		{Key: bulletin.FieldMethod, Words: []string{"방법", "신청", "접수"}},
		{Key: bulletin.FieldContact, Words: []string{"문의", "연락처", "전화번호", "담당"}},
		{Key: bulletin.FieldLocation, Words: []string{"장소", "위치", "지역"}},
		{Key: bulletin.FieldContent, Words: []string{"내용", "소개", "개요", "설명", "금액", "한도", "서류", "형태"}},
		{Key: bulletin.FieldNotes, Words: []string{"비고", "기타", "사용처"}},
	}
}

// DefaultAliases returns the alias table.
func DefaultAliases() map[string]bulletin.FieldKey {
	return map[string]bulletin.FieldKey{
		"대상":   bulletin.FieldTarget,
		"지원대상": bulletin.FieldTarget,
		"지원자격": bulletin.FieldTarget,
		"신청자격": bulletin.FieldTarget,

		"내용":   bulletin.FieldContent,
		"주요내용": bulletin.FieldContent,
		"지원내용": bulletin.FieldContent,
		"보장내용": bulletin.FieldContent,
		"제출서류": bulletin.FieldContent,
		"지원한도": bulletin.FieldContent,
		"지원금액": bulletin.FieldContent,
		"한도":   bulletin.FieldContent,
		"지원형태": bulletin.FieldContent,

		"사용처": bulletin.FieldNotes,
		"기타":  bulletin.FieldNotes,
		"비고":  bulletin.FieldNotes,

		"이용방법": bulletin.FieldMethod,
		"신청방법": bulletin.FieldMethod,
		"신청":   bulletin.FieldMethod,
		"청구방법": bulletin.FieldMethod,
		"인증방법": bulletin.FieldMethod,
		"접수":   bulletin.FieldMethod,
		"접수방법": bulletin.FieldMethod,

		"문의":   bulletin.FieldContact,
		"문의처":  bulletin.FieldContact,
		"연락처":  bulletin.FieldContact,
		"전화번호": bulletin.FieldContact,

		"기간":   bulletin.FieldPeriod,
		"신청기간": bulletin.FieldPeriod,
		"신청기한": bulletin.FieldPeriod,
		"청구기간": bulletin.FieldPeriod,
		"보장기간": bulletin.FieldPeriod,
		"추진일정": bulletin.FieldPeriod,
		"일시":   bulletin.FieldPeriod,

		"구입방법": bulletin.FieldPurchaseMethod,

		"장소": bulletin.FieldLocation,
	}
}

// DefaultRules returns the built-in extraction rules.
func DefaultRules() bulletin.Rules {
	return bulletin.Rules{
		Classifier:   bulletin.ClassifierKeyword,
		Keywords:     DefaultKeywordGroups(),
		Aliases:      DefaultAliases(),
		MaxKeyLength: DefaultMaxKeyLength,
		TrimContact:  true,
	}
}
