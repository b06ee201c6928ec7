package themedict

import (
	"github.com/wonny/themeleader/internal/contracts"
)

// Dictionary is the immutable theme → members/keywords mapping.
// 런타임 변경 없음: 확장은 설정 파일 교체로만
// ⭐ SSOT: 테마 정의는 이 패키지에서만
type Dictionary struct {
	entries []contracts.ThemeEntry
	byLabel map[string]int
}

// New builds a dictionary from entries, keeping definition order
func New(entries []contracts.ThemeEntry) *Dictionary {
	d := &Dictionary{
		entries: make([]contracts.ThemeEntry, len(entries)),
		byLabel: make(map[string]int, len(entries)),
	}
	copy(d.entries, entries)
	for i, e := range d.entries {
		d.byLabel[e.Label] = i
	}
	return d
}

// Default returns the built-in Korean theme map
func Default() *Dictionary {
	return New(defaultEntries)
}

// Themes returns all entries in definition order
func (d *Dictionary) Themes() []contracts.ThemeEntry {
	out := make([]contracts.ThemeEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Labels returns all theme labels in definition order
func (d *Dictionary) Labels() []string {
	labels := make([]string, len(d.entries))
	for i, e := range d.entries {
		labels[i] = e.Label
	}
	return labels
}

// Entry looks up a theme by label
func (d *Dictionary) Entry(label string) (contracts.ThemeEntry, bool) {
	i, ok := d.byLabel[label]
	if !ok {
		return contracts.ThemeEntry{}, false
	}
	return d.entries[i], true
}

// Members returns the member names of a theme, nil if unknown
func (d *Dictionary) Members(label string) []string {
	e, ok := d.Entry(label)
	if !ok {
		return nil
	}
	return e.Members
}

// defaultEntries is the built-in theme map.
// 멤버 구성은 상장 변동에 따라 어긋날 수 있으며, 해석 시점에 목록과 대조한다
var defaultEntries = []contracts.ThemeEntry{
	{
		Label:    "반도체",
		Members:  []string{"삼성전자", "SK하이닉스", "한미반도체", "리노공업", "DB하이텍", "원익IPS", "ISC"},
		Keywords: []string{"HBM", "파운드리", "D램", "낸드", "반도체장비"},
	},
	{
		Label:    "2차전지",
		Members:  []string{"에코프로", "에코프로비엠", "엘앤에프", "포스코퓨처엠", "LG에너지솔루션", "삼성SDI"},
		Keywords: []string{"배터리", "양극재", "전고체", "리튬"},
	},
	{
		Label:    "로봇",
		Members:  []string{"레인보우로보틱스", "두산로보틱스", "로보스타", "유일로보틱스", "에스피지"},
		Keywords: []string{"휴머노이드", "협동로봇", "자동화"},
	},
	{
		Label:    "방산",
		Members:  []string{"한화에어로스페이스", "LIG넥스원", "현대로템", "한국항공우주", "풍산"},
		Keywords: []string{"방위산업", "미사일", "K방산"},
	},
	{
		Label:    "전력",
		Members:  []string{"LS ELECTRIC", "효성중공업", "HD현대일렉트릭", "일진전기", "가온전선"},
		Keywords: []string{"전력기기", "변압기", "송전"},
	},
	{
		Label:    "원전",
		Members:  []string{"두산에너빌리티", "한전기술", "한전KPS", "우리기술", "비에이치아이"},
		Keywords: []string{"원자력", "SMR", "원전수출"},
	},
	{
		Label:    "조선",
		Members:  []string{"HD한국조선해양", "HD현대중공업", "한화오션", "삼성중공업", "HSD엔진"},
		Keywords: []string{"조선소", "LNG선", "함정"},
	},
	{
		Label:    "AI",
		Members:  []string{"NAVER", "카카오", "삼성전자", "SK하이닉스", "폴라리스오피스", "이스트소프트"},
		Keywords: []string{"인공지능", "챗GPT", "생성형", "LLM"},
	},
	{
		Label:    "양자",
		Members:  []string{"우리로", "엑스게이트", "드림시큐리티", "텔레필드", "케이씨에스"},
		Keywords: []string{"양자컴퓨터", "양자암호", "양자보안"},
	},
	{
		Label:    "바이오",
		Members:  []string{"삼성바이오로직스", "셀트리온", "HLB", "알테오젠", "유한양행"},
		Keywords: []string{"제약", "신약", "임상", "바이오시밀러"},
	},
}
