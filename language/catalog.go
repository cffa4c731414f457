package language

// catalog is the static language table. Records are ordered roughly by how
// often provider metadata carries the language, which also decides who wins
// shared variant names in the index.
var catalog = []Record{
	{Code1: "en", Code2: "eng", Code3: "eng", Name: "English", Native: "English",
		Names: []string{"Anglais", "Englisch", "Inglés", "Inglese", "Inglês", "Английский"}, Country: "us", Frequency: FrequencyCommon},
	{Code1: "fr", Code2: "fre", Code3: "fra", Name: "French", Native: "Français",
		Names: []string{"Französisch", "Francés", "Francese", "Francês", "Французский"}, Country: "fr", Frequency: FrequencyCommon},
	{Code1: "de", Code2: "ger", Code3: "deu", Name: "German", Native: "Deutsch",
		Names: []string{"Allemand", "Alemán", "Tedesco", "Alemão", "Немецкий"}, Country: "de", Frequency: FrequencyCommon},
	{Code1: "es", Code2: "spa", Code3: "spa", Name: "Spanish", Native: "Español",
		Names: []string{"Espagnol", "Spanisch", "Spagnolo", "Espanhol", "Castellano", "Испанский"}, Country: "es", Frequency: FrequencyCommon},
	{Code1: "it", Code2: "ita", Code3: "ita", Name: "Italian", Native: "Italiano",
		Names: []string{"Italien", "Italienisch", "Италья́нский"}, Country: "it", Frequency: FrequencyCommon},
	{Code1: "pt", Code2: "por", Code3: "por", Name: "Portuguese", Native: "Português",
		Names: []string{"Portugais", "Portugiesisch", "Portugués", "Portoghese", "Португальский"}, Country: "pt", Frequency: FrequencyCommon},
	{Code1: "ru", Code2: "rus", Code3: "rus", Name: "Russian", Native: "Русский",
		Names: []string{"Russe", "Russisch", "Ruso", "Russo", "Russkiy"}, Country: "ru", Frequency: FrequencyCommon},
	{Code1: "ja", Code2: "jpn", Code3: "jpn", Name: "Japanese", Native: "日本語",
		Names: []string{"Japonais", "Japanisch", "Japonés", "Giapponese", "Japonês", "Nihongo", "Японский"}, Country: "jp", Frequency: FrequencyCommon},
	{Code1: "zh", Code2: "chi", Code3: "zho", Name: "Chinese", Native: "中文",
		Names: []string{"Chinois", "Chinesisch", "Chino", "Cinese", "Chinês", "Mandarin", "Zhongwen", "Китайский"}, Country: "cn", Frequency: FrequencyCommon},
	{Code1: "ko", Code2: "kor", Code3: "kor", Name: "Korean", Native: "한국어",
		Names: []string{"Coréen", "Koreanisch", "Coreano", "Hangugeo", "Корейский"}, Country: "kr", Frequency: FrequencyCommon},
	{Code1: "hi", Code2: "hin", Code3: "hin", Name: "Hindi", Native: "हिन्दी",
		Names: []string{"Хинди"}, Country: "in", Frequency: FrequencyCommon},
	{Code1: "ar", Code2: "ara", Code3: "ara", Name: "Arabic", Native: "العربية",
		Names: []string{"Arabe", "Arabisch", "Árabe", "Arabo", "Арабский"}, Country: "sa", Frequency: FrequencyCommon},
	{Code1: "nl", Code2: "dut", Code3: "nld", Name: "Dutch", Native: "Nederlands",
		Names: []string{"Néerlandais", "Niederländisch", "Neerlandés", "Olandese", "Holandês", "Голландский"}, Country: "nl", Frequency: FrequencyCommon},
	{Code1: "sv", Code2: "swe", Code3: "swe", Name: "Swedish", Native: "Svenska",
		Names: []string{"Suédois", "Schwedisch", "Sueco", "Svedese", "Шведский"}, Country: "se", Frequency: FrequencyCommon},
	{Code1: "no", Code2: "nor", Code3: "nor", Name: "Norwegian", Native: "Norsk",
		Names: []string{"Norvégien", "Norwegisch", "Noruego", "Norvegese", "Norueguês", "Норвежский"}, Country: "no", Frequency: FrequencyCommon},
	{Code1: "da", Code2: "dan", Code3: "dan", Name: "Danish", Native: "Dansk",
		Names: []string{"Danois", "Dänisch", "Danés", "Danese", "Dinamarquês", "Датский"}, Country: "dk", Frequency: FrequencyCommon},
	{Code1: "fi", Code2: "fin", Code3: "fin", Name: "Finnish", Native: "Suomi",
		Names: []string{"Finnois", "Finnisch", "Finlandés", "Finlandese", "Finlandês", "Финский"}, Country: "fi", Frequency: FrequencyCommon},
	{Code1: "pl", Code2: "pol", Code3: "pol", Name: "Polish", Native: "Polski",
		Names: []string{"Polonais", "Polnisch", "Polaco", "Polacco", "Polonês", "Польский"}, Country: "pl", Frequency: FrequencyCommon},
	{Code1: "tr", Code2: "tur", Code3: "tur", Name: "Turkish", Native: "Türkçe",
		Names: []string{"Turc", "Türkisch", "Turco", "Турецкий"}, Country: "tr", Frequency: FrequencyCommon},
	{Code1: "el", Code2: "gre", Code3: "ell", Name: "Greek", Native: "Ελληνικά",
		Names: []string{"Grec", "Griechisch", "Griego", "Greco", "Grego", "Ellinika", "Греческий"}, Country: "gr", Frequency: FrequencyCommon},
	{Code1: "cs", Code2: "cze", Code3: "ces", Name: "Czech", Native: "Čeština",
		Names: []string{"Tchèque", "Tschechisch", "Checo", "Ceco", "Tcheco", "Чешский"}, Country: "cz", Frequency: FrequencyCommon},
	{Code1: "hu", Code2: "hun", Code3: "hun", Name: "Hungarian", Native: "Magyar",
		Names: []string{"Hongrois", "Ungarisch", "Húngaro", "Ungherese", "Венгерский"}, Country: "hu", Frequency: FrequencyCommon},
	{Code1: "ro", Code2: "rum", Code3: "ron", Name: "Romanian", Native: "Română",
		Names: []string{"Roumain", "Rumänisch", "Rumano", "Rumeno", "Romeno", "Румынский"}, Country: "ro", Frequency: FrequencyCommon},
	{Code1: "he", Code2: "heb", Code3: "heb", Name: "Hebrew", Native: "עברית",
		Names: []string{"Hébreu", "Hebräisch", "Hebreo", "Ebraico", "Hebraico", "Ivrit", "Иврит"}, Country: "il", Frequency: FrequencyOccasional},
	{Code1: "th", Code2: "tha", Code3: "tha", Name: "Thai", Native: "ไทย",
		Names: []string{"Thaï", "Thailändisch", "Tailandés", "Tailandese", "Tailandês", "Тайский"}, Country: "th", Frequency: FrequencyOccasional},
	{Code1: "vi", Code2: "vie", Code3: "vie", Name: "Vietnamese", Native: "Tiếng Việt",
		Names: []string{"Vietnamien", "Vietnamesisch", "Vietnamita", "Вьетнамский"}, Country: "vn", Frequency: FrequencyOccasional},
	{Code1: "id", Code2: "ind", Code3: "ind", Name: "Indonesian", Native: "Bahasa Indonesia",
		Names: []string{"Indonésien", "Indonesisch", "Indonesio", "Indonesiano", "Indonésio", "Индонезийский"}, Country: "id", Frequency: FrequencyOccasional},
	{Code1: "ms", Code2: "may", Code3: "msa", Name: "Malay", Native: "Bahasa Melayu",
		Names: []string{"Malais", "Malaiisch", "Malayo", "Malese", "Malaio", "Малайский"}, Country: "my", Frequency: FrequencyOccasional},
	{Code1: "uk", Code2: "ukr", Code3: "ukr", Name: "Ukrainian", Native: "Українська",
		Names: []string{"Ukrainien", "Ukrainisch", "Ucraniano", "Ucraino", "Украинский"}, Country: "ua", Frequency: FrequencyOccasional},
	{Code1: "bg", Code2: "bul", Code3: "bul", Name: "Bulgarian", Native: "Български",
		Names: []string{"Bulgare", "Bulgarisch", "Búlgaro", "Bulgaro", "Болгарский"}, Country: "bg", Frequency: FrequencyOccasional},
	{Code1: "hr", Code2: "hrv", Code3: "hrv", Name: "Croatian", Native: "Hrvatski",
		Names: []string{"Croate", "Kroatisch", "Croata", "Хорватский"}, Country: "hr", Frequency: FrequencyOccasional},
	{Code1: "sr", Code2: "srp", Code3: "srp", Name: "Serbian", Native: "Српски",
		Names: []string{"Serbe", "Serbisch", "Serbio", "Serbo", "Sérvio", "Srpski", "Сербский"}, Country: "rs", Frequency: FrequencyOccasional},
	{Code1: "sk", Code2: "slo", Code3: "slk", Name: "Slovak", Native: "Slovenčina",
		Names: []string{"Slovaque", "Slowakisch", "Eslovaco", "Slovacco", "Словацкий"}, Country: "sk", Frequency: FrequencyOccasional},
	{Code1: "sl", Code2: "slv", Code3: "slv", Name: "Slovenian", Native: "Slovenščina",
		Names: []string{"Slovène", "Slowenisch", "Esloveno", "Sloveno", "Словенский"}, Country: "si", Frequency: FrequencyOccasional},
	{Code1: "et", Code2: "est", Code3: "est", Name: "Estonian", Native: "Eesti",
		Names: []string{"Estonien", "Estnisch", "Estonio", "Estone", "Estoniano", "Эстонский"}, Country: "ee", Frequency: FrequencyOccasional},
	{Code1: "lv", Code2: "lav", Code3: "lav", Name: "Latvian", Native: "Latviešu",
		Names: []string{"Letton", "Lettisch", "Letón", "Lettone", "Letão", "Латышский"}, Country: "lv", Frequency: FrequencyOccasional},
	{Code1: "lt", Code2: "lit", Code3: "lit", Name: "Lithuanian", Native: "Lietuvių",
		Names: []string{"Lituanien", "Litauisch", "Lituano", "Литовский"}, Country: "lt", Frequency: FrequencyOccasional},
	{Code1: "fa", Code2: "per", Code3: "fas", Name: "Persian", Native: "فارسی",
		Names: []string{"Persan", "Persisch", "Persa", "Persiano", "Farsi", "Персидский"}, Country: "ir", Frequency: FrequencyOccasional},
	{Code1: "ur", Code2: "urd", Code3: "urd", Name: "Urdu", Native: "اردو",
		Names: []string{"Ourdou", "Урду"}, Country: "pk", Frequency: FrequencyOccasional},
	{Code1: "bn", Code2: "ben", Code3: "ben", Name: "Bengali", Native: "বাংলা",
		Names: []string{"Bengalisch", "Bengalí", "Bengalese", "Bangla", "Бенгальский"}, Country: "bd", Frequency: FrequencyOccasional},
	{Code1: "ta", Code2: "tam", Code3: "tam", Name: "Tamil", Native: "தமிழ்",
		Names: []string{"Tamoul", "Тамильский"}, Country: "in", Frequency: FrequencyOccasional},
	{Code1: "te", Code2: "tel", Code3: "tel", Name: "Telugu", Native: "తెలుగు",
		Names: []string{"Télougou", "Телугу"}, Country: "in", Frequency: FrequencyOccasional},
	{Code1: "ml", Code2: "mal", Code3: "mal", Name: "Malayalam", Native: "മലയാളം",
		Names: []string{"Малаялам"}, Country: "in", Frequency: FrequencyOccasional},
	{Code1: "kn", Code2: "kan", Code3: "kan", Name: "Kannada", Native: "ಕನ್ನಡ",
		Names: []string{"Каннада"}, Country: "in", Frequency: FrequencyUncommon},
	{Code1: "mr", Code2: "mar", Code3: "mar", Name: "Marathi", Native: "मराठी",
		Names: []string{"Маратхи"}, Country: "in", Frequency: FrequencyUncommon},
	{Code1: "pa", Code2: "pan", Code3: "pan", Name: "Punjabi", Native: "ਪੰਜਾਬੀ",
		Names: []string{"Pendjabi", "Панджаби"}, Country: "in", Frequency: FrequencyUncommon},
	{Code1: "gu", Code2: "guj", Code3: "guj", Name: "Gujarati", Native: "ગુજરાતી",
		Names: []string{"Гуджарати"}, Country: "in", Frequency: FrequencyUncommon},
	{Code1: "tl", Code2: "tgl", Code3: "tgl", Name: "Tagalog", Native: "Tagalog",
		Names: []string{"Filipino", "Тагальский"}, Country: "ph", Frequency: FrequencyUncommon},
	{Code1: "sw", Code2: "swa", Code3: "swa", Name: "Swahili", Native: "Kiswahili",
		Names: []string{"Суахили"}, Country: "ke", Frequency: FrequencyUncommon},
	{Code1: "af", Code2: "afr", Code3: "afr", Name: "Afrikaans", Native: "Afrikaans",
		Names: []string{"Африкаанс"}, Country: "za", Frequency: FrequencyUncommon},
	{Code1: "is", Code2: "ice", Code3: "isl", Name: "Icelandic", Native: "Íslenska",
		Names: []string{"Islandais", "Isländisch", "Islandés", "Islandese", "Islandês", "Исландский"}, Country: "is", Frequency: FrequencyUncommon},
	{Code1: "ga", Code2: "gle", Code3: "gle", Name: "Irish", Native: "Gaeilge",
		Names: []string{"Irlandais", "Irisch", "Irlandés", "Irlandese", "Ирландский"}, Country: "ie", Frequency: FrequencyUncommon},
	{Code1: "cy", Code2: "wel", Code3: "cym", Name: "Welsh", Native: "Cymraeg",
		Names: []string{"Gallois", "Walisisch", "Galés", "Gallese", "Валлийский"}, Country: "gb", Frequency: FrequencyUncommon},
	{Code1: "eu", Code2: "baq", Code3: "eus", Name: "Basque", Native: "Euskara",
		Names: []string{"Vasco", "Basco", "Баскский"}, Country: "es", Frequency: FrequencyUncommon},
	{Code1: "ca", Code2: "cat", Code3: "cat", Name: "Catalan", Native: "Català",
		Names: []string{"Katalanisch", "Catalán", "Catalano", "Catalão", "Каталанский"}, Country: "es", Frequency: FrequencyUncommon},
	{Code1: "gl", Code2: "glg", Code3: "glg", Name: "Galician", Native: "Galego",
		Names: []string{"Galicien", "Gallego", "Галисийский"}, Country: "es", Frequency: FrequencyUncommon},
	{Code1: "sq", Code2: "alb", Code3: "sqi", Name: "Albanian", Native: "Shqip",
		Names: []string{"Albanais", "Albanisch", "Albanés", "Albanese", "Албанский"}, Country: "al", Frequency: FrequencyUncommon},
	{Code1: "mk", Code2: "mac", Code3: "mkd", Name: "Macedonian", Native: "Македонски",
		Names: []string{"Macédonien", "Mazedonisch", "Macedonio", "Macedone", "Македонский"}, Country: "mk", Frequency: FrequencyUncommon},
	{Code1: "bs", Code2: "bos", Code3: "bos", Name: "Bosnian", Native: "Bosanski",
		Names: []string{"Bosniaque", "Bosnisch", "Bosnio", "Bosniaco", "Боснийский"}, Country: "ba", Frequency: FrequencyUncommon},
	{Code1: "ka", Code2: "geo", Code3: "kat", Name: "Georgian", Native: "ქართული",
		Names: []string{"Géorgien", "Georgisch", "Georgiano", "Грузинский"}, Country: "ge", Frequency: FrequencyUncommon},
	{Code1: "hy", Code2: "arm", Code3: "hye", Name: "Armenian", Native: "Հայերեն",
		Names: []string{"Arménien", "Armenisch", "Armenio", "Armeno", "Армянский"}, Country: "am", Frequency: FrequencyUncommon},
	{Code1: "az", Code2: "aze", Code3: "aze", Name: "Azerbaijani", Native: "Azərbaycanca",
		Names: []string{"Azéri", "Aserbaidschanisch", "Azerí", "Azero", "Азербайджанский"}, Country: "az", Frequency: FrequencyUncommon},
	{Code1: "kk", Code2: "kaz", Code3: "kaz", Name: "Kazakh", Native: "Қазақша",
		Names: []string{"Казахский"}, Country: "kz", Frequency: FrequencyUncommon},
	{Code1: "uz", Code2: "uzb", Code3: "uzb", Name: "Uzbek", Native: "Oʻzbekcha",
		Names: []string{"Узбекский"}, Country: "uz", Frequency: FrequencyNone},
	{Code1: "mn", Code2: "mon", Code3: "mon", Name: "Mongolian", Native: "Монгол",
		Names: []string{"Монгольский"}, Country: "mn", Frequency: FrequencyNone},
	{Code1: "my", Code2: "bur", Code3: "mya", Name: "Burmese", Native: "မြန်မာဘာသာ",
		Names: []string{"Birman", "Birmanisch", "Birmano", "Бирманский"}, Country: "mm", Frequency: FrequencyNone},
	{Code1: "km", Code2: "khm", Code3: "khm", Name: "Khmer", Native: "ភាសាខ្មែរ",
		Names: []string{"Кхмерский"}, Country: "kh", Frequency: FrequencyNone},
	{Code1: "lo", Code2: "lao", Code3: "lao", Name: "Lao", Native: "ພາສາລາວ",
		Names: []string{"Laotien", "Лаосский"}, Country: "la", Frequency: FrequencyNone},
	{Code1: "si", Code2: "sin", Code3: "sin", Name: "Sinhala", Native: "සිංහල",
		Names: []string{"Cingalais", "Singhalesisch", "Cingalés", "Сингальский"}, Country: "lk", Frequency: FrequencyNone},
	{Code1: "ne", Code2: "nep", Code3: "nep", Name: "Nepali", Native: "नेपाली",
		Names: []string{"Népalais", "Непальский"}, Country: "np", Frequency: FrequencyNone},
	{Code1: "am", Code2: "amh", Code3: "amh", Name: "Amharic", Native: "አማርኛ",
		Names: []string{"Amharique", "Амхарский"}, Country: "et", Frequency: FrequencyNone},
	{Code1: "yo", Code2: "yor", Code3: "yor", Name: "Yoruba", Native: "Yorùbá",
		Names: []string{"Йоруба"}, Country: "ng", Frequency: FrequencyNone},
	{Code1: "zu", Code2: "zul", Code3: "zul", Name: "Zulu", Native: "isiZulu",
		Names: []string{"Zoulou", "Зулу"}, Country: "za", Frequency: FrequencyNone},
	{Code1: "xh", Code2: "xho", Code3: "xho", Name: "Xhosa", Native: "isiXhosa",
		Names: []string{"Коса"}, Country: "za", Frequency: FrequencyNone},
	{Code1: "eo", Code2: "epo", Code3: "epo", Name: "Esperanto", Native: "Esperanto",
		Names: []string{"Эсперанто"}, Country: "", Frequency: FrequencyNone},
	{Code1: "la", Code2: "lat", Code3: "lat", Name: "Latin", Native: "Latina",
		Names: []string{"Latein", "Latín", "Latino", "Латинский"}, Country: "va", Frequency: FrequencyNone},
}
