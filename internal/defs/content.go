package defs

// DefaultContent возвращает встроенные тексты открытки.
func DefaultContent() Content {
	return Content{
		Title:    "Happy Valentine's Day",
		Subtitle: "A little card, made just for you",
		Question: "Will you be my Valentine?",
		YesLines: []string{
			"I knew it! You said YES!",
			"Yay! You just made my day perfect.",
			"I owe you a million hugs.",
		},
		NoLines: []string{
			"Looks like you picked the wrong button. Try again!",
			"Are you sure?",
			"Maybe you want to think about it a little more...",
			"If the answer is NO, I'll send an army of cute bunnies to change your mind!",
			"Hmm... that's not the answer I was hoping for.",
			"Why don't you want to be my Valentine?",
			"Sweetheart? Please?",
			"Pretty please? Pretty pretty please?",
			"Last warning...",
			"If you say NO, my heart goes *boom*",
			"...",
		},
		Letter: []string{
			"My love,",
			"Every day with you feels like the best part of a song I never want to end.",
			"Thank you for the laughs, the patience, and every small moment that turned into a memory.",
			"I can't wait for all the adventures we still have ahead.",
		},
		Signature:     "Yours",
		SealMessage:   "Sealed. It's official now: you have a place in my heart.",
		CopiedMessage: "The letter was copied.",
		CopyFailed:    "Can't copy automatically. Select the text manually.",
		MusicTip:      "(Tip: put a music.mp3 in assets/ for the music to work)",
		MusicLabel:    "Music",
		MusicOnLabel:  "Music: ON",
	}
}

// withDefaults заполняет пустые поля значениями по умолчанию.
func (c Content) withDefaults() Content {
	d := DefaultContent()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Title, d.Title)
	fill(&c.Subtitle, d.Subtitle)
	fill(&c.Question, d.Question)
	fill(&c.Signature, d.Signature)
	fill(&c.SealMessage, d.SealMessage)
	fill(&c.CopiedMessage, d.CopiedMessage)
	fill(&c.CopyFailed, d.CopyFailed)
	fill(&c.MusicTip, d.MusicTip)
	fill(&c.MusicLabel, d.MusicLabel)
	fill(&c.MusicOnLabel, d.MusicOnLabel)
	if len(c.YesLines) == 0 {
		c.YesLines = d.YesLines
	}
	if len(c.NoLines) == 0 {
		c.NoLines = d.NoLines
	}
	if len(c.Letter) == 0 {
		c.Letter = d.Letter
	}
	return c
}
