package deck

import "github.com/conlin/hanzideck/internal/domain"

// Seed returns the built-in starter deck used on first run and when the
// persisted file cannot be read. Each call constructs fresh cards with new
// ids and default learning state.
func Seed() []domain.Card {
	cards := make([]domain.Card, 0, len(seedContent))
	for _, content := range seedContent {
		cards = append(cards, domain.New(content))
	}
	return cards
}

var seedContent = []domain.Content{
	{
		Chinese:            "你好",
		Pinyin:             "nǐ hǎo",
		Translations:       []string{"hello", "hi"},
		Hint:               "nee how",
		Category:           "Basics",
		Level:              1,
		Example:            "你好，我叫小明。",
		ExamplePinyin:      "nǐ hǎo, wǒ jiào xiǎo míng.",
		ExampleTranslation: "Hello, my name is Xiaoming.",
	},
	{
		Chinese:            "谢谢",
		Pinyin:             "xiè xie",
		Translations:       []string{"thank you", "thanks"},
		Hint:               "shyeh shyeh",
		Category:           "Basics",
		Level:              1,
		Example:            "谢谢你的帮助。",
		ExamplePinyin:      "xiè xie nǐ de bāng zhù.",
		ExampleTranslation: "Thank you for your help.",
	},
	{
		Chinese:            "再见",
		Pinyin:             "zài jiàn",
		Translations:       []string{"goodbye", "see you"},
		Hint:               "dzai jyen",
		Category:           "Basics",
		Level:              1,
		Example:            "明天见，再见！",
		ExamplePinyin:      "míng tiān jiàn, zài jiàn!",
		ExampleTranslation: "See you tomorrow, goodbye!",
	},
	{
		Chinese:            "水",
		Pinyin:             "shuǐ",
		Translations:       []string{"water", "liquid"},
		Hint:               "shway",
		Category:           "Basics",
		Level:              1,
		Example:            "我想喝水。",
		ExamplePinyin:      "wǒ xiǎng hē shuǐ.",
		ExampleTranslation: "I want to drink water.",
	},
	{
		Chinese:            "猫",
		Pinyin:             "māo",
		Translations:       []string{"cat", "kitty"},
		Hint:               "maow",
		Category:           "Animals",
		Level:              1,
		Example:            "那只猫很可爱。",
		ExamplePinyin:      "nà zhī māo hěn kě ài.",
		ExampleTranslation: "That cat is very cute.",
	},
	{
		Chinese:            "狗",
		Pinyin:             "gǒu",
		Translations:       []string{"dog", "puppy"},
		Hint:               "go",
		Category:           "Animals",
		Level:              1,
		Example:            "我家有一只狗。",
		ExamplePinyin:      "wǒ jiā yǒu yī zhī gǒu.",
		ExampleTranslation: "My family has a dog.",
	},
	{
		Chinese:            "吃饭",
		Pinyin:             "chī fàn",
		Translations:       []string{"to eat", "to have a meal"},
		Hint:               "chir fan",
		Category:           "Food",
		Level:              2,
		Example:            "我们一起去吃饭吧。",
		ExamplePinyin:      "wǒ men yī qǐ qù chī fàn ba.",
		ExampleTranslation: "Let's go eat together.",
	},
	{
		Chinese:            "米饭",
		Pinyin:             "mǐ fàn",
		Translations:       []string{"rice", "cooked rice"},
		Hint:               "mee fan",
		Category:           "Food",
		Level:              1,
		Example:            "我每天都吃米饭。",
		ExamplePinyin:      "wǒ měi tiān dōu chī mǐ fàn.",
		ExampleTranslation: "I eat rice every day.",
	},
	{
		Chinese:            "学习",
		Pinyin:             "xué xí",
		Translations:       []string{"to study", "to learn"},
		Hint:               "shweh shee",
		Category:           "School",
		Level:              2,
		Example:            "我在学习中文。",
		ExamplePinyin:      "wǒ zài xué xí zhōng wén.",
		ExampleTranslation: "I am studying Chinese.",
	},
	{
		Chinese:            "老师",
		Pinyin:             "lǎo shī",
		Translations:       []string{"teacher", "instructor"},
		Hint:               "laow shir",
		Category:           "School",
		Level:              1,
		Example:            "我们的老师很好。",
		ExamplePinyin:      "wǒ men de lǎo shī hěn hǎo.",
		ExampleTranslation: "Our teacher is very good.",
	},
	{
		Chinese:            "朋友",
		Pinyin:             "péng yǒu",
		Translations:       []string{"friend", "pal"},
		Hint:               "pung yo",
		Category:           "People",
		Level:              1,
		Example:            "他是我最好的朋友。",
		ExamplePinyin:      "tā shì wǒ zuì hǎo de péng yǒu.",
		ExampleTranslation: "He is my best friend.",
	},
	{
		Chinese:            "家",
		Pinyin:             "jiā",
		Translations:       []string{"home", "family"},
		Hint:               "jya",
		Category:           "People",
		Level:              1,
		Example:            "我想回家。",
		ExamplePinyin:      "wǒ xiǎng huí jiā.",
		ExampleTranslation: "I want to go home.",
	},
	{
		Chinese:            "明天",
		Pinyin:             "míng tiān",
		Translations:       []string{"tomorrow", "the next day"},
		Hint:               "ming tyen",
		Category:           "Time",
		Level:              2,
		Example:            "明天我们去公园。",
		ExamplePinyin:      "míng tiān wǒ men qù gōng yuán.",
		ExampleTranslation: "Tomorrow we go to the park.",
	},
	{
		Chinese:            "现在",
		Pinyin:             "xiàn zài",
		Translations:       []string{"now", "at present"},
		Hint:               "shyen dzai",
		Category:           "Time",
		Level:              2,
		Example:            "现在几点了？",
		ExamplePinyin:      "xiàn zài jǐ diǎn le?",
		ExampleTranslation: "What time is it now?",
	},
	{
		Chinese:            "漂亮",
		Pinyin:             "piào liang",
		Translations:       []string{"pretty", "beautiful"},
		Hint:               "pyaow lyang",
		Category:           "Adjectives",
		Level:              3,
		Example:            "这个地方真漂亮。",
		ExamplePinyin:      "zhè ge dì fāng zhēn piào liang.",
		ExampleTranslation: "This place is really beautiful.",
	},
	{
		Chinese:            "高兴",
		Pinyin:             "gāo xìng",
		Translations:       []string{"happy", "glad"},
		Hint:               "gaow shing",
		Category:           "Adjectives",
		Level:              2,
		Example:            "认识你很高兴。",
		ExamplePinyin:      "rèn shi nǐ hěn gāo xìng.",
		ExampleTranslation: "Nice to meet you.",
	},
}
