package analysis

import "fmt"

type mockPhrases struct {
	literal    string
	signals    [2]Signal
	focus      [2]string
	intentions [2]string
	needs      [2]string
	risks      [2]Risk
	summary    string
}

var mockTables = map[Locale]mockPhrases{
	LocaleZhTW: {
		literal: "「%s...」的字面意思是使用者想表達這個想法。",
		signals: [2]Signal{
			{Cue: "用詞較為直接", Evidence: "選擇了簡潔的表達方式"},
			{Cue: "可能有情緒", Evidence: "表述中隱含的態度"},
		},
		focus:      [2]string{"邏輯一致性", "實際意義"},
		intentions: [2]string{"清楚表達想法", "尋求理解"},
		needs:      [2]string{"被認真對待", "被正確理解"},
		risks: [2]Risk{
			{Risk: "過於直接可能被誤解為態度冷漠", Why: "溝通風格差異導致的誤會"},
			{Risk: "缺乏上下文可能導致歧義", Why: "信息不完整引發的理解偏差"},
		},
		summary: "從 %s 的視角看，使用者的表述反映了邏輯性和直接性的特點。",
	},
	LocaleZhCN: {
		literal: "「%s...」的字面意思是用户想表达这个想法。",
		signals: [2]Signal{
			{Cue: "用词较为直接", Evidence: "选择了简洁的表达方式"},
			{Cue: "可能有情绪", Evidence: "表述中隐含的态度"},
		},
		focus:      [2]string{"逻辑一致性", "实际意义"},
		intentions: [2]string{"清楚表达想法", "寻求理解"},
		needs:      [2]string{"被认真对待", "被正确理解"},
		risks: [2]Risk{
			{Risk: "过于直接可能被误解为态度冷漠", Why: "沟通风格差异导致的误会"},
			{Risk: "缺乏上下文可能导致歧义", Why: "信息不完整引发的理解偏差"},
		},
		summary: "从 %s 的视角看，用户的表述反映了逻辑性和直接性的特点。",
	},
	LocaleEN: {
		literal: "The literal meaning of \"%s...\" is what the user intends to express.",
		signals: [2]Signal{
			{Cue: "Direct word choice", Evidence: "Uses concise expression"},
			{Cue: "Possible emotion", Evidence: "Implied attitude in statement"},
		},
		focus:      [2]string{"Logical consistency", "Practical meaning"},
		intentions: [2]string{"Express idea clearly", "Seek understanding"},
		needs:      [2]string{"Be taken seriously", "Be understood correctly"},
		risks: [2]Risk{
			{Risk: "Too direct might be misread as coldness", Why: "Differences in communication style"},
			{Risk: "Lack of context may cause ambiguity", Why: "Incomplete information skews interpretation"},
		},
		summary: "From the %s perspective, the statement reflects a logical and direct style.",
	},
}

const mockTextPrefix = 50

// Mock synthesizes a complete Result without calling any backend. The output
// depends only on its arguments.
func Mock(text, mbti, locale string) Result {
	t := mockTables[ParseLocale(locale)]
	return Result{
		Literal: fmt.Sprintf(t.literal, prefix(text, mockTextPrefix)),
		Signals: t.signals[:],
		Lens: Lens{
			Focus:            t.focus[:],
			LikelyIntentions: t.intentions[:],
			UnspokenNeeds:    t.needs[:],
		},
		Risks:   t.risks[:],
		Summary: fmt.Sprintf(t.summary, mbti),
	}
}
