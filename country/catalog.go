package country

// catalog is the static country table, ordered roughly by how often provider
// metadata carries the country.
var catalog = []Record{
	{Code2: "us", Code3: "usa", Name: "United States", Names: []string{"USA", "America", "United States of America", "États-Unis", "Estados Unidos"}, Language: "en", Frequency: FrequencyCommon},
	{Code2: "gb", Code3: "gbr", Name: "United Kingdom", Names: []string{"UK", "Great Britain", "Britain", "England", "Royaume-Uni", "Reino Unido"}, Language: "en", Frequency: FrequencyCommon},
	{Code2: "ca", Code3: "can", Name: "Canada", Names: []string{"Kanada", "Canadá"}, Language: "en", Frequency: FrequencyCommon},
	{Code2: "au", Code3: "aus", Name: "Australia", Names: []string{"Australie", "Australien"}, Language: "en", Frequency: FrequencyCommon},
	{Code2: "fr", Code3: "fra", Name: "France", Names: []string{"Frankreich", "Francia", "França"}, Language: "fr", Frequency: FrequencyCommon},
	{Code2: "de", Code3: "deu", Name: "Germany", Names: []string{"Deutschland", "Allemagne", "Alemania", "Germania"}, Language: "de", Frequency: FrequencyCommon},
	{Code2: "es", Code3: "esp", Name: "Spain", Names: []string{"España", "Espagne", "Spanien", "Spagna"}, Language: "es", Frequency: FrequencyCommon},
	{Code2: "it", Code3: "ita", Name: "Italy", Names: []string{"Italia", "Italie", "Italien"}, Language: "it", Frequency: FrequencyCommon},
	{Code2: "jp", Code3: "jpn", Name: "Japan", Names: []string{"Japon", "Japón", "Giappone", "日本"}, Language: "ja", Frequency: FrequencyCommon},
	{Code2: "kr", Code3: "kor", Name: "South Korea", Names: []string{"Korea", "Republic of Korea", "Corée du Sud", "한국"}, Language: "ko", Frequency: FrequencyCommon},
	{Code2: "cn", Code3: "chn", Name: "China", Names: []string{"Chine", "中国"}, Language: "zh", Frequency: FrequencyCommon},
	{Code2: "in", Code3: "ind", Name: "India", Names: []string{"Inde", "Indien", "भारत"}, Language: "hi", Frequency: FrequencyCommon},
	{Code2: "ru", Code3: "rus", Name: "Russia", Names: []string{"Russian Federation", "Russie", "Россия"}, Language: "ru", Frequency: FrequencyCommon},
	{Code2: "br", Code3: "bra", Name: "Brazil", Names: []string{"Brasil", "Brésil", "Brasilien"}, Language: "pt", Frequency: FrequencyCommon},
	{Code2: "mx", Code3: "mex", Name: "Mexico", Names: []string{"México", "Mexique", "Mexiko"}, Language: "es", Frequency: FrequencyCommon},
	{Code2: "nl", Code3: "nld", Name: "Netherlands", Names: []string{"Holland", "Nederland", "Pays-Bas"}, Language: "nl", Frequency: FrequencyCommon},
	{Code2: "se", Code3: "swe", Name: "Sweden", Names: []string{"Sverige", "Suède", "Schweden"}, Language: "sv", Frequency: FrequencyCommon},
	{Code2: "no", Code3: "nor", Name: "Norway", Names: []string{"Norge", "Norvège", "Norwegen"}, Language: "no", Frequency: FrequencyCommon},
	{Code2: "dk", Code3: "dnk", Name: "Denmark", Names: []string{"Danmark", "Danemark", "Dänemark"}, Language: "da", Frequency: FrequencyCommon},
	{Code2: "fi", Code3: "fin", Name: "Finland", Names: []string{"Suomi", "Finlande", "Finnland"}, Language: "fi", Frequency: FrequencyCommon},
	{Code2: "pl", Code3: "pol", Name: "Poland", Names: []string{"Polska", "Pologne", "Polen"}, Language: "pl", Frequency: FrequencyCommon},
	{Code2: "tr", Code3: "tur", Name: "Turkey", Names: []string{"Türkiye", "Turquie", "Türkei"}, Language: "tr", Frequency: FrequencyCommon},
	{Code2: "ie", Code3: "irl", Name: "Ireland", Names: []string{"Éire", "Irlande", "Irland"}, Language: "en", Frequency: FrequencyOccasional},
	{Code2: "nz", Code3: "nzl", Name: "New Zealand", Names: []string{"Aotearoa", "Nouvelle-Zélande"}, Language: "en", Frequency: FrequencyOccasional},
	{Code2: "za", Code3: "zaf", Name: "South Africa", Names: []string{"Afrique du Sud", "Südafrika"}, Language: "en", Frequency: FrequencyOccasional},
	{Code2: "ar", Code3: "arg", Name: "Argentina", Names: []string{"Argentine", "Argentinien"}, Language: "es", Frequency: FrequencyOccasional},
	{Code2: "cl", Code3: "chl", Name: "Chile", Names: []string{"Chili"}, Language: "es", Frequency: FrequencyOccasional},
	{Code2: "co", Code3: "col", Name: "Colombia", Names: []string{"Colombie", "Kolumbien"}, Language: "es", Frequency: FrequencyOccasional},
	{Code2: "pt", Code3: "prt", Name: "Portugal", Names: []string{}, Language: "pt", Frequency: FrequencyOccasional},
	{Code2: "be", Code3: "bel", Name: "Belgium", Names: []string{"België", "Belgique", "Belgien"}, Language: "nl", Frequency: FrequencyOccasional},
	{Code2: "ch", Code3: "che", Name: "Switzerland", Names: []string{"Schweiz", "Suisse", "Svizzera"}, Language: "de", Frequency: FrequencyOccasional},
	{Code2: "at", Code3: "aut", Name: "Austria", Names: []string{"Österreich", "Autriche"}, Language: "de", Frequency: FrequencyOccasional},
	{Code2: "gr", Code3: "grc", Name: "Greece", Names: []string{"Ελλάδα", "Hellas", "Grèce", "Griechenland"}, Language: "el", Frequency: FrequencyOccasional},
	{Code2: "cz", Code3: "cze", Name: "Czechia", Names: []string{"Czech Republic", "Česko", "Tchéquie"}, Language: "cs", Frequency: FrequencyOccasional},
	{Code2: "hu", Code3: "hun", Name: "Hungary", Names: []string{"Magyarország", "Hongrie", "Ungarn"}, Language: "hu", Frequency: FrequencyOccasional},
	{Code2: "ro", Code3: "rou", Name: "Romania", Names: []string{"România", "Roumanie", "Rumänien"}, Language: "ro", Frequency: FrequencyOccasional},
	{Code2: "bg", Code3: "bgr", Name: "Bulgaria", Names: []string{"България", "Bulgarie", "Bulgarien"}, Language: "bg", Frequency: FrequencyOccasional},
	{Code2: "hr", Code3: "hrv", Name: "Croatia", Names: []string{"Hrvatska", "Croatie", "Kroatien"}, Language: "hr", Frequency: FrequencyOccasional},
	{Code2: "rs", Code3: "srb", Name: "Serbia", Names: []string{"Србија", "Srbija", "Serbie", "Serbien"}, Language: "sr", Frequency: FrequencyOccasional},
	{Code2: "ua", Code3: "ukr", Name: "Ukraine", Names: []string{"Україна"}, Language: "uk", Frequency: FrequencyOccasional},
	{Code2: "il", Code3: "isr", Name: "Israel", Names: []string{"ישראל", "Israël"}, Language: "he", Frequency: FrequencyOccasional},
	{Code2: "sa", Code3: "sau", Name: "Saudi Arabia", Names: []string{"Arabie Saoudite", "Saudi-Arabien"}, Language: "ar", Frequency: FrequencyOccasional},
	{Code2: "ae", Code3: "are", Name: "United Arab Emirates", Names: []string{"UAE", "Émirats Arabes Unis"}, Language: "ar", Frequency: FrequencyOccasional},
	{Code2: "eg", Code3: "egy", Name: "Egypt", Names: []string{"Égypte", "Ägypten"}, Language: "ar", Frequency: FrequencyOccasional},
	{Code2: "th", Code3: "tha", Name: "Thailand", Names: []string{"ประเทศไทย", "Thaïlande"}, Language: "th", Frequency: FrequencyOccasional},
	{Code2: "vn", Code3: "vnm", Name: "Vietnam", Names: []string{"Việt Nam"}, Language: "vi", Frequency: FrequencyOccasional},
	{Code2: "id", Code3: "idn", Name: "Indonesia", Names: []string{"Indonésie", "Indonesien"}, Language: "id", Frequency: FrequencyOccasional},
	{Code2: "my", Code3: "mys", Name: "Malaysia", Names: []string{"Malaisie"}, Language: "ms", Frequency: FrequencyOccasional},
	{Code2: "ph", Code3: "phl", Name: "Philippines", Names: []string{"Pilipinas"}, Language: "tl", Frequency: FrequencyOccasional},
	{Code2: "sg", Code3: "sgp", Name: "Singapore", Names: []string{"Singapour", "Singapur"}, Language: "en", Frequency: FrequencyOccasional},
	{Code2: "hk", Code3: "hkg", Name: "Hong Kong", Names: []string{"香港"}, Language: "zh", Frequency: FrequencyOccasional},
	{Code2: "tw", Code3: "twn", Name: "Taiwan", Names: []string{"台灣", "Taïwan"}, Language: "zh", Frequency: FrequencyOccasional},
	{Code2: "pk", Code3: "pak", Name: "Pakistan", Names: []string{}, Language: "ur", Frequency: FrequencyUncommon},
	{Code2: "bd", Code3: "bgd", Name: "Bangladesh", Names: []string{}, Language: "bn", Frequency: FrequencyUncommon},
	{Code2: "lk", Code3: "lka", Name: "Sri Lanka", Names: []string{}, Language: "si", Frequency: FrequencyUncommon},
	{Code2: "np", Code3: "npl", Name: "Nepal", Names: []string{"Népal"}, Language: "ne", Frequency: FrequencyUncommon},
	{Code2: "ir", Code3: "irn", Name: "Iran", Names: []string{"ایران"}, Language: "fa", Frequency: FrequencyUncommon},
	{Code2: "iq", Code3: "irq", Name: "Iraq", Names: []string{"Irak"}, Language: "ar", Frequency: FrequencyUncommon},
	{Code2: "ma", Code3: "mar", Name: "Morocco", Names: []string{"Maroc", "Marokko"}, Language: "ar", Frequency: FrequencyUncommon},
	{Code2: "ng", Code3: "nga", Name: "Nigeria", Names: []string{"Nigéria"}, Language: "en", Frequency: FrequencyUncommon},
	{Code2: "ke", Code3: "ken", Name: "Kenya", Names: []string{}, Language: "sw", Frequency: FrequencyUncommon},
	{Code2: "et", Code3: "eth", Name: "Ethiopia", Names: []string{"Éthiopie"}, Language: "am", Frequency: FrequencyUncommon},
	{Code2: "is", Code3: "isl", Name: "Iceland", Names: []string{"Ísland", "Islande", "Island"}, Language: "is", Frequency: FrequencyUncommon},
	{Code2: "ee", Code3: "est", Name: "Estonia", Names: []string{"Eesti", "Estonie", "Estland"}, Language: "et", Frequency: FrequencyUncommon},
	{Code2: "lv", Code3: "lva", Name: "Latvia", Names: []string{"Latvija", "Lettonie", "Lettland"}, Language: "lv", Frequency: FrequencyUncommon},
	{Code2: "lt", Code3: "ltu", Name: "Lithuania", Names: []string{"Lietuva", "Lituanie", "Litauen"}, Language: "lt", Frequency: FrequencyUncommon},
	{Code2: "sk", Code3: "svk", Name: "Slovakia", Names: []string{"Slovensko", "Slovaquie", "Slowakei"}, Language: "sk", Frequency: FrequencyUncommon},
	{Code2: "si", Code3: "svn", Name: "Slovenia", Names: []string{"Slovenija", "Slovénie", "Slowenien"}, Language: "sl", Frequency: FrequencyUncommon},
	{Code2: "ba", Code3: "bih", Name: "Bosnia and Herzegovina", Names: []string{"Bosnia", "Bosnie"}, Language: "bs", Frequency: FrequencyUncommon},
	{Code2: "mk", Code3: "mkd", Name: "North Macedonia", Names: []string{"Macedonia", "Macédoine"}, Language: "mk", Frequency: FrequencyUncommon},
	{Code2: "al", Code3: "alb", Name: "Albania", Names: []string{"Shqipëria", "Albanie", "Albanien"}, Language: "sq", Frequency: FrequencyUncommon},
	{Code2: "ge", Code3: "geo", Name: "Georgia", Names: []string{"საქართველო", "Géorgie"}, Language: "ka", Frequency: FrequencyUncommon},
	{Code2: "am", Code3: "arm", Name: "Armenia", Names: []string{"Հայաստան", "Arménie"}, Language: "hy", Frequency: FrequencyUncommon},
	{Code2: "az", Code3: "aze", Name: "Azerbaijan", Names: []string{"Azərbaycan", "Azerbaïdjan"}, Language: "az", Frequency: FrequencyUncommon},
	{Code2: "kz", Code3: "kaz", Name: "Kazakhstan", Names: []string{"Қазақстан"}, Language: "kk", Frequency: FrequencyUncommon},
	{Code2: "mn", Code3: "mng", Name: "Mongolia", Names: []string{"Монгол Улс", "Mongolie"}, Language: "mn", Frequency: FrequencyNone},
	{Code2: "kh", Code3: "khm", Name: "Cambodia", Names: []string{"Cambodge", "Kambodscha"}, Language: "km", Frequency: FrequencyNone},
	{Code2: "la", Code3: "lao", Name: "Laos", Names: []string{}, Language: "lo", Frequency: FrequencyNone},
	{Code2: "mm", Code3: "mmr", Name: "Myanmar", Names: []string{"Burma", "Birmanie"}, Language: "my", Frequency: FrequencyNone},
	{Code2: "va", Code3: "vat", Name: "Vatican City", Names: []string{"Holy See", "Vatican"}, Language: "la", Frequency: FrequencyNone},
}
