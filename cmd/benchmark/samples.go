package main

// Sample represents a benchmark text sample.
type Sample struct {
	Name   string
	Text   string
	MBTI   string
	Locale string
}

// Samples contains short chat messages of the kind the extension sends,
// spread across the supported locales and a few personality types.
// Used by default benchmark mode (--quality=false) for performance measurement.
var Samples = []Sample{
	{
		Name:   "en-tiny",
		Text:   "I think we should meet at 3pm.",
		MBTI:   "INTJ",
		Locale: "en",
	},
	{
		Name:   "en-short",
		Text:   "Sure, whatever works for you. I guess I can move my other thing again.",
		MBTI:   "ISFJ",
		Locale: "en",
	},
	{
		Name:   "tw-short",
		Text:   "好啊，你們決定就好，我都可以。",
		MBTI:   "INFP",
		Locale: "zh-TW",
	},
	{
		Name:   "cn-medium",
		Text:   "这个方案我看过了，整体没问题，但是时间线有点赶。如果下周五之前拿不到设计稿，我们可能需要重新排期，你觉得呢？",
		MBTI:   "ESTJ",
		Locale: "zh-CN",
	},
	{
		Name:   "en-long",
		Text:   "Thanks for the feedback on the draft. I went through every comment and updated most of them, but I left the intro as it was because I feel it sets the right tone. If you still think it needs to change, let's talk it through tomorrow instead of going back and forth here.",
		MBTI:   "ENFJ",
		Locale: "en",
	},
	{
		Name:   "tw-max",
		Text:   "其實我一直想跟你說，上次開會的時候你直接否定我的提案，讓我有點不太舒服。我知道你是對事不對人，也知道你的考量很合理，但如果可以的話，下次能不能先私下跟我討論，或是在會議上多給我一點時間說明？我很重視這個團隊，也希望我們的合作能更順利。",
		MBTI:   "INFJ",
		Locale: "zh-TW",
	},
}

// QualitySamples covers tone-heavy messages where the interpretation matters
// more than latency. Used by --quality mode to eyeball the analysis output.
var QualitySamples = []Sample{
	{
		Name:   "passive-agreement",
		Text:   "Fine. Do it your way.",
		MBTI:   "ENTJ",
		Locale: "en",
	},
	{
		Name:   "polite-refusal",
		Text:   "謝謝你想到我，不過這次可能不太方便，下次有機會再說吧。",
		MBTI:   "ISFP",
		Locale: "zh-TW",
	},
	{
		Name:   "hedged-criticism",
		Text:   "这个想法挺有意思的，就是可能还需要再打磨一下细节。",
		MBTI:   "INTP",
		Locale: "zh-CN",
	},
	{
		Name:   "enthusiasm",
		Text:   "OMG yes!!! Count me in, I'll bring snacks and maybe a few friends too?",
		MBTI:   "ESFP",
		Locale: "en",
	},
	{
		Name:   "deadline-pressure",
		Text:   "Just checking in again on the report. Any ETA?",
		MBTI:   "ISTJ",
		Locale: "en",
	},
}
