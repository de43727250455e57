package survey

// The interview catalog. Questions are defined once and never mutated at
// runtime; follow-up questions live in their own slice but are addressable
// through Lookup like any core question. Follow-up questions carry weights
// but never their own follow-up rules.

var CoreQuestions = []Question{
	// scale 1..5
	{
		ID:    "q01_energy_drive",
		Type:  TypeScale,
		Text:  "Мне ближе быстрая, напористая музыка — чем спокойная и плавная.",
		Scale: &Scale{Min: 1, Max: 5, Labels: []string{"Совсем нет", "", "50/50", "", "Да, точно"}},
		AxisWeights: map[string]int{"energy": 12},
		FollowupRules: []FollowupRule{
			{IfAxisUncertain: "energy", Ask: []string{"f01_energy_context"}},
		},
	},
	{
		ID:          "q02_energy_stamina",
		Type:        TypeScale,
		Text:        "Я могу работать на максимуме несколько недель подряд и не выгорать.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"energy": 6, "structure": 4},
		FollowupRules: []FollowupRule{
			{IfAxisUncertain: "structure", Ask: []string{"f02_structure_deadlines"}},
		},
	},
	{
		ID:          "q03_novelty_risk",
		Type:        TypeScale,
		Text:        "Я скорее выпущу что-то своё, даже если это не зайдёт массово.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"novelty": 12, "commercial_focus": -6},
		FollowupRules: []FollowupRule{
			{IfAxisConflict: []string{"novelty", "commercial_focus"}, Ask: []string{"f03_tradeoff_unique_vs_mass"}},
		},
	},
	{
		ID:          "q04_novelty_iteration",
		Type:        TypeScale,
		Text:        "Мне нравится ломать то, что уже работает, — пробовать новый звук или подачу.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"novelty": 10},
	},
	{
		ID:          "q05_darkness_vector",
		Type:        TypeScale,
		Text:        "Моя музыка чаще про тень и драму, чем про свет и лёгкость.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"darkness": 12},
	},
	{
		ID:          "q06_darkness_boundaries",
		Type:        TypeScale,
		Text:        "Даже в тяжёлых темах я оставлю надежду — полная безысходность не моё.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"darkness": -6, "lyric_focus": 4},
	},
	{
		ID:          "q07_lyric_truth",
		Type:        TypeScale,
		Text:        "Мне тяжело исполнять текст, если он не про реальные вещи.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"lyric_focus": 10},
	},
	{
		ID:          "q08_lyric_technique",
		Type:        TypeScale,
		Text:        "Мне важнее подача и вайб — а не глубокий смысл в каждой строке.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"lyric_focus": -10, "commercial_focus": 4},
		FollowupRules: []FollowupRule{
			{IfAxisConflict: []string{"lyric_focus"}, Ask: []string{"f04_lyrics_priority_check"}},
		},
	},
	{
		ID:          "q09_structure_planning",
		Type:        TypeScale,
		Text:        "С планом и дедлайнами я делаю лучший результат.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"structure": 12},
	},
	{
		ID:          "q10_structure_flow",
		Type:        TypeScale,
		Text:        "Лучшее у меня получается в потоке: пришло — сел — сделал.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"structure": -10, "novelty": 4},
	},
	{
		ID:          "q11_publicness_attention",
		Type:        TypeScale,
		Text:        "Камера, сцена, эфиры — мне в кайф быть на виду.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"publicness": 12},
	},
	{
		ID:          "q12_publicness_privacy",
		Type:        TypeScale,
		Text:        "Пусть за меня говорит музыка — личное я держу при себе.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"publicness": -10, "lyric_focus": 4},
	},
	{
		ID:          "q13_conflict_direct",
		Type:        TypeScale,
		Text:        "В конфликте я режу прямо и быстро, даже если жёстко.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"conflict_style": 12},
	},
	{
		ID:          "q14_conflict_diplomacy",
		Type:        TypeScale,
		Text:        "Чаще я сглаживаю углы, чем иду в лобовое столкновение.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"conflict_style": -12},
	},
	{
		ID:          "q15_commercial_instinct",
		Type:        TypeScale,
		Text:        "Я думаю цифрами: охваты, плейлисты, удержание — и подстраиваю подачу.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"commercial_focus": 12},
	},
	{
		ID:          "q16_commercial_integrity",
		Type:        TypeScale,
		Text:        "Я не поменяю своё ради цифр — даже если это замедлит рост.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"commercial_focus": -10, "novelty": 4},
	},

	// forced choice
	{
		ID:          "q17_fc_unique_vs_mass",
		Type:        TypeForcedChoice,
		Text:        "Что тебе ближе: делать своё или делать масштабное?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Сделать странно, но своё — пусть не всем зайдёт", AxisWeights: map[string]int{"novelty": 14, "commercial_focus": -8}},
			{ID: "B", Label: "Сделать понятно и стабильно — чтобы масштабировалось", AxisWeights: map[string]int{"novelty": -10, "commercial_focus": 12}},
		},
		FollowupRules: []FollowupRule{
			{IfAxisUncertain: "novelty", Ask: []string{"f03_tradeoff_unique_vs_mass"}},
		},
	},
	{
		ID:          "q18_fc_dark_vs_bright",
		Type:        TypeForcedChoice,
		Text:        "Ядро твоей музыки — это скорее:",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Тень, драма, напряжение", AxisWeights: map[string]int{"darkness": 14}},
			{ID: "B", Label: "Свет, лёгкость, энергия", AxisWeights: map[string]int{"darkness": -12, "energy": 4}},
		},
	},
	{
		ID:          "q19_fc_plan_vs_flow",
		Type:        TypeForcedChoice,
		Text:        "Когда ты реально делаешь лучшее?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Когда есть план, этапы и контроль", AxisWeights: map[string]int{"structure": 14}},
			{ID: "B", Label: "Когда ловлю поток и делаю на импульсе", AxisWeights: map[string]int{"structure": -12, "novelty": 4}},
		},
	},
	{
		ID:          "q20_fc_public_style",
		Type:        TypeForcedChoice,
		Text:        "Твой стиль на публике:",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Я — лицо бренда, люблю общаться и быть на виду", AxisWeights: map[string]int{"publicness": 14}},
			{ID: "B", Label: "Я скрытнее: пусть внимание на музыке, не на мне", AxisWeights: map[string]int{"publicness": -14}},
		},
	},

	// situational judgment
	{
		ID:          "q21_sjt_hate_comment",
		Type:        TypeSJT,
		Text:        "Под Reels пишут: «Кринж. Очередной позёр». Что делаешь?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Игнорирую и продолжаю выкладывать", AxisWeights: map[string]int{"structure": 6, "publicness": 4}},
			{ID: "B", Label: "Отвечаю спокойно или с иронией", AxisWeights: map[string]int{"conflict_style": -8, "publicness": 6}},
			{ID: "C", Label: "Отвечаю жёстко, ставлю на место", AxisWeights: map[string]int{"conflict_style": 12, "publicness": 4}},
			{ID: "D", Label: "Удаляю комментарий — не хочу триггериться", AxisWeights: map[string]int{"publicness": -8, "structure": -4}},
		},
		FollowupRules: []FollowupRule{
			{IfAxisUncertain: "conflict_style", Ask: []string{"f05_conflict_reply_style"}},
		},
	},
	{
		ID:          "q22_sjt_release_failed",
		Type:        TypeSJT,
		Text:        "Релиз не залетел, цифры слабые. Первое действие?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Резко меняю стиль — ищу новое", AxisWeights: map[string]int{"novelty": 10, "structure": -6}},
			{ID: "B", Label: "Докручиваю подачу, не меняя суть музыки", AxisWeights: map[string]int{"structure": 10, "commercial_focus": 6}},
			{ID: "C", Label: "Беру паузу — мне нужно переварить", AxisWeights: map[string]int{"energy": -6, "publicness": -4}},
			{ID: "D", Label: "Иду к команде/наставнику за разбором", AxisWeights: map[string]int{"structure": 8, "publicness": 4}},
		},
	},
	{
		ID:          "q23_sjt_team_deadline",
		Type:        TypeSJT,
		Text:        "Человек в команде второй раз срывает дедлайн. Что делаешь?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Меняю исполнителя без разговоров", AxisWeights: map[string]int{"conflict_style": 8, "structure": 6}},
			{ID: "B", Label: "Жёсткий разговор + условия + контроль", AxisWeights: map[string]int{"conflict_style": 10, "structure": 10}},
			{ID: "C", Label: "Пытаюсь понять причины и помочь", AxisWeights: map[string]int{"conflict_style": -8, "structure": 6}},
			{ID: "D", Label: "Беру часть задачи на себя, чтобы спасти", AxisWeights: map[string]int{"structure": 6, "energy": -2}},
		},
	},

	// open
	{
		ID:          "q24_open_identity",
		Type:        TypeOpen,
		Text:        "Продолжи одной фразой: «Моя музыка — это …»",
		AxisWeights: map[string]int{},
	},
	{
		ID:          "q25_open_nonnegotiable",
		Type:        TypeOpen,
		Text:        "Что ты никогда не продашь ради хайпа?",
		AxisWeights: map[string]int{},
	},

	// social magnetism: situational judgment
	{
		ID:          "q26_sjt_hate_wave",
		Type:        TypeSJT,
		Text:        "Под постом — волна хейта: «зазнался», «кто ты такой». Что делаешь?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Пишу развёрнутый ответ, объясняю позицию", AxisWeights: map[string]int{"clarity": 8, "warmth": 6}},
			{ID: "B", Label: "Один саркастичный ответ — и дальше работаю", AxisWeights: map[string]int{"edge": 10, "power": 6}},
			{ID: "C", Label: "Молча удаляю и блокирую", AxisWeights: map[string]int{"power": -4, "warmth": -4}},
			{ID: "D", Label: "Превращаю хейт в контент — сторис или видео", AxisWeights: map[string]int{"edge": 8, "power": 10}},
		},
	},
	{
		ID:          "q27_sjt_ignored",
		Type:        TypeSJT,
		Text:        "Написал важному человеку. Тишина уже неделю. Что дальше?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Пишу повторно, прямо спрашиваю", AxisWeights: map[string]int{"power": 6, "clarity": 8}},
			{ID: "B", Label: "Нахожу другой путь — обхожу стороной", AxisWeights: map[string]int{"edge": 4, "clarity": -4}},
			{ID: "C", Label: "Жду ещё — может, человек занят", AxisWeights: map[string]int{"warmth": 6, "power": -6}},
			{ID: "D", Label: "Делаю контент, где косвенно привлекаю внимание", AxisWeights: map[string]int{"edge": 8, "power": 4}},
		},
	},
	{
		ID:          "q28_sjt_betrayal",
		Type:        TypeSJT,
		Text:        "Человек из команды подвёл в критический момент. Первый шаг?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Убираю из проекта сразу, без разговоров", AxisWeights: map[string]int{"power": 10, "warmth": -8}},
			{ID: "B", Label: "Жёсткий разговор один на один, даю шанс", AxisWeights: map[string]int{"clarity": 8, "power": 6}},
			{ID: "C", Label: "Публично обозначаю ситуацию, чтобы не повторилось", AxisWeights: map[string]int{"edge": 8, "clarity": 6}},
			{ID: "D", Label: "Пытаюсь понять причину, но дистанцируюсь", AxisWeights: map[string]int{"warmth": 4, "clarity": 4}},
		},
	},
	{
		ID:          "q29_sjt_viral",
		Type:        TypeSJT,
		Text:        "Твой трек завирусился. +50k за сутки. Что делаешь?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Сразу леплю контент — сторис, Reels, эфиры", AxisWeights: map[string]int{"power": 8, "edge": 6}},
			{ID: "B", Label: "Делаю паузу, чтобы не наломать дров", AxisWeights: map[string]int{"clarity": 8, "warmth": -4}},
			{ID: "C", Label: "Пишу честный пост: «вот что я чувствую»", AxisWeights: map[string]int{"warmth": 10, "clarity": 6}},
			{ID: "D", Label: "Готовлю следующий релиз, пока внимание горячее", AxisWeights: map[string]int{"power": 6, "clarity": 4}},
		},
	},
	{
		ID:          "q30_sjt_public_mistake",
		Type:        TypeSJT,
		Text:        "Ты публично ошибся — неудачный пост, косяк на сцене. Реакция?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Признаю ошибку публично и двигаюсь дальше", AxisWeights: map[string]int{"clarity": 12, "warmth": 6}},
			{ID: "B", Label: "Молча удаляю — все забудут", AxisWeights: map[string]int{"power": -4, "clarity": -8}},
			{ID: "C", Label: "Превращаю в шутку/мем — обращаю в плюс", AxisWeights: map[string]int{"edge": 10, "power": 6}},
			{ID: "D", Label: "Прошу команду разрулить, сам ухожу в тень", AxisWeights: map[string]int{"warmth": -6, "power": -6}},
		},
	},
	{
		ID:          "q31_sjt_be_softer",
		Type:        TypeSJT,
		Text:        "Тебе говорят: «Будь проще, помягче — так больше людей придёт». Что делаешь?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Слушаю и пробую — может, они правы", AxisWeights: map[string]int{"warmth": 6, "edge": -8}},
			{ID: "B", Label: "Вежливо отказываюсь — мой стиль не про мягкость", AxisWeights: map[string]int{"clarity": 8, "edge": 6}},
			{ID: "C", Label: "Игнорирую — это не обсуждается", AxisWeights: map[string]int{"edge": 10, "power": 4}},
			{ID: "D", Label: "Нахожу компромисс: в контенте мягче, в музыке нет", AxisWeights: map[string]int{"warmth": 4, "clarity": 4}},
		},
	},

	// social magnetism: forced choice
	{
		ID:          "q32_fc_close_vs_strong",
		Type:        TypeForcedChoice,
		Text:        "Что для бренда ценнее?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Быть ближе к людям — доступность, «свой»", AxisWeights: map[string]int{"warmth": 14, "power": -6}},
			{ID: "B", Label: "Быть сильнее — авторитет, дистанция", AxisWeights: map[string]int{"power": 14, "warmth": -6}},
		},
	},
	{
		ID:          "q33_fc_stable_vs_unpredictable",
		Type:        TypeForcedChoice,
		Text:        "Твой публичный образ — это:",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Стабильность: узнаваемый стиль, предсказуемость", AxisWeights: map[string]int{"clarity": 12, "edge": -8}},
			{ID: "B", Label: "Непредсказуемость: удивлять, ломать ожидания", AxisWeights: map[string]int{"edge": 14, "clarity": -6}},
		},
	},
	{
		ID:          "q34_fc_direct_vs_diplomatic",
		Type:        TypeForcedChoice,
		Text:        "Как ты общаешься с людьми?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Прямо — говорю как есть, даже если режет", AxisWeights: map[string]int{"edge": 10, "clarity": 8}},
			{ID: "B", Label: "Дипломатично — выбираю слова ради результата", AxisWeights: map[string]int{"warmth": 8, "clarity": 4}},
		},
	},
	{
		ID:          "q35_fc_face_vs_music",
		Type:        TypeForcedChoice,
		Text:        "Ты как артист — это скорее:",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Я — лицо бренда, моя личность и есть продукт", AxisWeights: map[string]int{"power": 10, "warmth": 6}},
			{ID: "B", Label: "Пусть говорит музыка, а я за ней", AxisWeights: map[string]int{"clarity": 6, "edge": -4}},
		},
	},

	// social magnetism: open
	{
		ID:          "q36_open_attract",
		Type:        TypeOpen,
		Text:        "Продолжи: «Люди тянутся ко мне, когда я…»",
		AxisWeights: map[string]int{},
	},
	{
		ID:          "q37_open_repel",
		Type:        TypeOpen,
		Text:        "Продолжи: «Люди отдаляются, когда я…»",
		AxisWeights: map[string]int{},
	},
}

var FollowupQuestions = []Question{
	{
		ID:          "f01_energy_context",
		Type:        TypeForcedChoice,
		Text:        "Где ты сильнее как артист?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "В высоком драйве, напоре, взрыве", AxisWeights: map[string]int{"energy": 10}},
			{ID: "B", Label: "В спокойной глубине, атмосфере, тонкости", AxisWeights: map[string]int{"energy": -10, "darkness": 4}},
		},
	},
	{
		ID:          "f02_structure_deadlines",
		Type:        TypeScale,
		Text:        "Без дедлайна и контроля я часто откладываю и растягиваю процесс.",
		Scale:       &Scale{Min: 1, Max: 5},
		AxisWeights: map[string]int{"structure": -12},
	},
	{
		ID:          "f03_tradeoff_unique_vs_mass",
		Type:        TypeForcedChoice,
		Text:        "Если выбирать одно на полгода:",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Делать узнаваемый «хитовый» коридор", AxisWeights: map[string]int{"commercial_focus": 12, "novelty": -6}},
			{ID: "B", Label: "Делать новый звук/образ и рискнуть цифрами", AxisWeights: map[string]int{"novelty": 12, "commercial_focus": -8}},
		},
	},
	{
		ID:          "f04_lyrics_priority_check",
		Type:        TypeForcedChoice,
		Text:        "Что тебя больше цепляет в любимых треках?",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Смысл, история, строки, которые режут", AxisWeights: map[string]int{"lyric_focus": 10}},
			{ID: "B", Label: "Подача, флоу, саунд — даже если смысл простой", AxisWeights: map[string]int{"lyric_focus": -10, "commercial_focus": 4}},
		},
	},
	{
		ID:          "f05_conflict_reply_style",
		Type:        TypeForcedChoice,
		Text:        "Твой стиль ответа на провокацию:",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Срежу и поставлю точку", AxisWeights: map[string]int{"conflict_style": 10}},
			{ID: "B", Label: "Переведу в юмор или спокойствие", AxisWeights: map[string]int{"conflict_style": -10}},
		},
	},
	// hints surfaced when the open magnetism answers come back empty or "don't know"
	{
		ID:          "f06_attract_hint",
		Type:        TypeSJT,
		Text:        "Люди тянутся ко мне, когда я:",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Открыт и на энергии — зажигаю и веду", AxisWeights: map[string]int{"warmth": 8, "power": 4}},
			{ID: "B", Label: "Спокоен и глубок — создаю доверие", AxisWeights: map[string]int{"warmth": 10, "clarity": 6}},
			{ID: "C", Label: "Дерзкий и непредсказуемый — ломаю шаблоны", AxisWeights: map[string]int{"edge": 10, "power": 4}},
			{ID: "D", Label: "Честный и прямой — без фильтров", AxisWeights: map[string]int{"clarity": 10, "edge": 4}},
		},
	},
	{
		ID:          "f07_repel_hint",
		Type:        TypeSJT,
		Text:        "Люди отдаляются, когда я:",
		AxisWeights: map[string]int{},
		Options: []Option{
			{ID: "A", Label: "Резко режу — и не замечаю, что задел", AxisWeights: map[string]int{"edge": 6, "warmth": -8}},
			{ID: "B", Label: "Пропадаю и молчу без объяснений", AxisWeights: map[string]int{"warmth": -6, "clarity": -6}},
			{ID: "C", Label: "Давлю и требую по-своему", AxisWeights: map[string]int{"power": 8, "warmth": -6}},
			{ID: "D", Label: "Становлюсь холодным и закрытым", AxisWeights: map[string]int{"warmth": -10, "clarity": -4}},
		},
	},
}

var (
	byID         map[string]*Question
	followupByID map[string]*Question
)

func init() {
	byID = make(map[string]*Question, len(CoreQuestions)+len(FollowupQuestions))
	followupByID = make(map[string]*Question, len(FollowupQuestions))
	for i := range CoreQuestions {
		byID[CoreQuestions[i].ID] = &CoreQuestions[i]
	}
	for i := range FollowupQuestions {
		byID[FollowupQuestions[i].ID] = &FollowupQuestions[i]
		followupByID[FollowupQuestions[i].ID] = &FollowupQuestions[i]
	}
}

// Lookup resolves any question, core or follow-up, by id. Unknown ids
// return false; callers are expected to skip, not error.
func Lookup(id string) (*Question, bool) {
	q, ok := byID[id]
	return q, ok
}

// FollowupByID resolves a question from the follow-up catalog only.
func FollowupByID(id string) (*Question, bool) {
	q, ok := followupByID[id]
	return q, ok
}
