package curriculum

import "fmt"

func seedGrades() []Grade {
	return []Grade{
		{ID: "middle-1", Name: "중학교 1학년", ShortName: "중1", Level: LevelMiddle, Order: 1, TotalUnits: 10},
		{ID: "middle-2", Name: "중학교 2학년", ShortName: "중2", Level: LevelMiddle, Order: 2, TotalUnits: 10},
		{ID: "middle-3", Name: "중학교 3학년", ShortName: "중3", Level: LevelMiddle, Order: 3, TotalUnits: 10, Mock: true},
		{ID: "high-1", Name: "고등학교 1학년", ShortName: "고1", Level: LevelHigh, Order: 4, TotalUnits: 12, Mock: true},
		{ID: "high-2", Name: "고등학교 2학년", ShortName: "고2", Level: LevelHigh, Order: 5, TotalUnits: 12, Mock: true},
		{ID: "high-3", Name: "고등학교 3학년", ShortName: "고3", Level: LevelHigh, Order: 6, TotalUnits: 12, Mock: true},
	}
}

func seedUnits() []Unit {
	units := []Unit{middle1Lesson1()}
	for _, g := range seedGrades() {
		first := 1
		if g.ID == "middle-1" {
			first = 2
		}
		for n := first; n <= g.TotalUnits; n++ {
			units = append(units, placeholderUnit(g.ID, n))
		}
	}
	return units
}

func placeholderUnit(gradeID string, n int) Unit {
	return Unit{
		ID:      fmt.Sprintf("%s-lesson-%d", gradeID, n),
		GradeID: gradeID,
		Number:  n,
		Title:   fmt.Sprintf("Lesson %d. (준비중)", n),
		Topic:   "준비중",
		Mock:    true,
	}
}

func middle1Lesson1() Unit {
	return Unit{
		ID:      "middle-1-lesson-1",
		GradeID: "middle-1",
		Number:  1,
		Title:   "Lesson 1. My Daily Life",
		Topic:   "일상생활",
		Words: []Word{
			{ID: "m1-l1-w1", English: "wake up", Korean: "일어나다", PartOfSpeech: "verb", Example: "I wake up at 7 every morning.", ExampleKorean: "나는 매일 아침 7시에 일어난다.", Difficulty: "basic"},
			{ID: "m1-l1-w2", English: "brush", Korean: "(양치/빗질을) 하다", PartOfSpeech: "verb", Example: "I brush my teeth twice a day.", ExampleKorean: "나는 하루에 두 번 양치를 한다.", Difficulty: "basic"},
			{ID: "m1-l1-w3", English: "breakfast", Korean: "아침식사", PartOfSpeech: "noun", Example: "I eat breakfast with my family.", ExampleKorean: "나는 가족과 함께 아침을 먹는다.", Difficulty: "basic"},
			{ID: "m1-l1-w4", English: "school", Korean: "학교", PartOfSpeech: "noun", Example: "I go to school by bus.", ExampleKorean: "나는 버스로 학교에 간다.", Difficulty: "basic"},
			{ID: "m1-l1-w5", English: "lunch", Korean: "점심식사", PartOfSpeech: "noun", Example: "We have lunch at 12:30.", ExampleKorean: "우리는 12시 30분에 점심을 먹는다.", Difficulty: "basic"},
			{ID: "m1-l1-w6", English: "study", Korean: "공부하다", PartOfSpeech: "verb", Example: "I study English every day.", ExampleKorean: "나는 매일 영어를 공부한다.", Difficulty: "basic"},
			{ID: "m1-l1-w7", English: "homework", Korean: "숙제", PartOfSpeech: "noun", Example: "I do my homework after school.", ExampleKorean: "나는 방과 후에 숙제를 한다.", Difficulty: "basic"},
			{ID: "m1-l1-w8", English: "dinner", Korean: "저녁식사", PartOfSpeech: "noun", Example: "We have dinner at 7 PM.", ExampleKorean: "우리는 저녁 7시에 저녁식사를 한다.", Difficulty: "basic"},
			{ID: "m1-l1-w9", English: "watch", Korean: "보다", PartOfSpeech: "verb", Example: "I watch TV in the evening.", ExampleKorean: "나는 저녁에 TV를 본다.", Difficulty: "basic"},
			{ID: "m1-l1-w10", English: "sleep", Korean: "자다", PartOfSpeech: "verb", Example: "I go to sleep at 10 PM.", ExampleKorean: "나는 저녁 10시에 잔다.", Difficulty: "basic"},
			{ID: "m1-l1-w11", English: "shower", Korean: "샤워", PartOfSpeech: "noun", Example: "I take a shower before bed.", ExampleKorean: "나는 자기 전에 샤워를 한다.", Difficulty: "basic"},
			{ID: "m1-l1-w12", English: "friend", Korean: "친구", PartOfSpeech: "noun", Example: "I play with my friends.", ExampleKorean: "나는 친구들과 논다.", Difficulty: "basic"},
			{ID: "m1-l1-w13", English: "usually", Korean: "보통", PartOfSpeech: "adverb", Example: "I usually walk to school.", ExampleKorean: "나는 보통 학교에 걸어간다.", Difficulty: "basic"},
			{ID: "m1-l1-w14", English: "sometimes", Korean: "때때로", PartOfSpeech: "adverb", Example: "I sometimes play soccer.", ExampleKorean: "나는 때때로 축구를 한다.", Difficulty: "basic"},
			{ID: "m1-l1-w15", English: "always", Korean: "항상", PartOfSpeech: "adverb", Example: "I always do my best.", ExampleKorean: "나는 항상 최선을 다한다.", Difficulty: "basic"},
			{ID: "m1-l1-w16", English: "weekend", Korean: "주말", PartOfSpeech: "noun", Example: "I rest on the weekend.", ExampleKorean: "나는 주말에 쉰다.", Difficulty: "basic"},
			{ID: "m1-l1-w17", English: "exercise", Korean: "운동하다", PartOfSpeech: "verb", Example: "I exercise every morning.", ExampleKorean: "나는 매일 아침 운동한다.", Difficulty: "basic"},
			{ID: "m1-l1-w18", English: "read", Korean: "읽다", PartOfSpeech: "verb", Example: "I read books before bed.", ExampleKorean: "나는 자기 전에 책을 읽는다.", Difficulty: "basic"},
			{ID: "m1-l1-w19", English: "help", Korean: "돕다", PartOfSpeech: "verb", Example: "I help my mom with cooking.", ExampleKorean: "나는 엄마의 요리를 돕는다.", Difficulty: "basic"},
			{ID: "m1-l1-w20", English: "play", Korean: "놀다, 경기하다", PartOfSpeech: "verb", Example: "I play basketball after school.", ExampleKorean: "나는 방과 후에 농구를 한다.", Difficulty: "basic"},
		},
		Phrases: []Phrase{
			{ID: "m1-l1-p1", English: "get ready for", Korean: "~을 준비하다", Example: "I get ready for school.", ExampleKorean: "나는 학교 갈 준비를 한다."},
			{ID: "m1-l1-p2", English: "go to bed", Korean: "잠자리에 들다", Example: "I go to bed early.", ExampleKorean: "나는 일찍 잠자리에 든다."},
			{ID: "m1-l1-p3", English: "have breakfast/lunch/dinner", Korean: "아침/점심/저녁을 먹다", Example: "We have breakfast together.", ExampleKorean: "우리는 함께 아침을 먹는다."},
			{ID: "m1-l1-p4", English: "after school", Korean: "방과 후에", Example: "I play soccer after school.", ExampleKorean: "나는 방과 후에 축구를 한다."},
			{ID: "m1-l1-p5", English: "on weekends", Korean: "주말에", Example: "I meet my friends on weekends.", ExampleKorean: "나는 주말에 친구들을 만난다."},
			{ID: "m1-l1-p6", English: "take a shower", Korean: "샤워하다", Example: "I take a shower every morning.", ExampleKorean: "나는 매일 아침 샤워한다."},
			{ID: "m1-l1-p7", English: "do homework", Korean: "숙제하다", Example: "I do homework in my room.", ExampleKorean: "나는 내 방에서 숙제한다."},
			{ID: "m1-l1-p8", English: "watch TV", Korean: "TV를 보다", Example: "I watch TV after dinner.", ExampleKorean: "나는 저녁 식사 후에 TV를 본다."},
			{ID: "m1-l1-p9", English: "listen to music", Korean: "음악을 듣다", Example: "I listen to music while studying.", ExampleKorean: "나는 공부하면서 음악을 듣는다."},
			{ID: "m1-l1-p10", English: "play with friends", Korean: "친구들과 놀다", Example: "I play with friends in the park.", ExampleKorean: "나는 공원에서 친구들과 논다."},
		},
		Grammar: []GrammarPoint{
			{
				ID:          "m1-l1-g1",
				Title:       "Present Simple Tense",
				TitleKorean: "현재 시제 (단순현재)",
				Explanation: "습관적인 행동이나 일반적인 사실을 나타낼 때 사용합니다. 주어가 3인칭 단수(he, she, it)일 때는 동사에 -s 또는 -es를 붙입니다.",
				Examples: []GrammarExample{
					{Sentence: "I go to school every day.", Translation: "나는 매일 학교에 간다.", Highlight: "go"},
					{Sentence: "She likes pizza.", Translation: "그녀는 피자를 좋아한다.", Highlight: "likes"},
					{Sentence: "We study English on Mondays.", Translation: "우리는 월요일에 영어를 공부한다.", Highlight: "study"},
				},
			},
			{
				ID:          "m1-l1-g2",
				Title:       "Frequency Adverbs",
				TitleKorean: "빈도 부사",
				Explanation: "행동의 빈도를 나타내는 부사입니다. 일반동사 앞, be동사 뒤에 위치합니다. always(항상) > usually(보통) > often(자주) > sometimes(때때로) > never(절대~않다)",
				Examples: []GrammarExample{
					{Sentence: "I always wake up early.", Translation: "나는 항상 일찍 일어난다.", Highlight: "always"},
					{Sentence: "She is usually happy.", Translation: "그녀는 보통 행복하다.", Highlight: "usually"},
					{Sentence: "We sometimes play soccer.", Translation: "우리는 때때로 축구를 한다.", Highlight: "sometimes"},
				},
			},
		},
		Reading: &Reading{
			Title:     "My Daily Life",
			Passage:   dailyLifePassage,
			WordCount: 280,
			Minutes:   3,
		},
	}
}

const dailyLifePassage = `My name is Tom. I am 13 years old, and I am a middle school student. Let me tell you about my daily life.

Every morning, I wake up at 7 AM. First, I brush my teeth and wash my face. Then, I have breakfast with my family. We usually eat rice, soup, and side dishes together. After breakfast, I get ready for school.

I go to school by bus. School starts at 8:30 AM. I have six classes every day. My favorite subject is English because I like learning new words and talking with my friends in English. I also enjoy PE class because I love playing sports.

At 12:30 PM, we have lunch in the cafeteria. I usually eat with my best friend, Minji. After lunch, we sometimes play basketball in the playground.

School finishes at 3:30 PM. I go home and do my homework. I always do my homework before dinner. Then, I help my mom with cooking or cleaning.

We have dinner at 7 PM. After dinner, I watch TV or read books. Sometimes I play computer games, but my mom says I should not play too much. I usually go to bed at 10 PM.

On weekends, I exercise in the morning and meet my friends in the afternoon. I sometimes go to the movies with them. I enjoy my daily life!`
