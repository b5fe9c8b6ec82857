// Package catalog provides the fixed fallback catalog of well-known generic
// recipes and the deterministic picker used when no adequate database
// candidate exists.
package catalog

// Entry is one fallback catalog recipe.
type Entry struct {
	Title        string
	Tags         string
	Why          string
	Ingredients  string
	Instructions string
	Time         string
}

// entries covers common cuisines and diets: breakfast, pasta, legume/vegan,
// poultry, beef, pork, fish, vegetable, soup. Text is pre-folded to ASCII,
// matching the normalizer's output alphabet.
var entries = []Entry{
	{
		Title:        "Shakshuka z pomidorami",
		Tags:         "sniadanie jajka wegetarianskie pomidory szybkie",
		Why:          "Popularny przepis sniadaniowy znany z kuchni bliskowschodniej i blogow kulinarnych.",
		Ingredients:  "Pomidory, papryka, cebula, czosnek, jajka, kmin rzymski, oliwa.",
		Instructions: "Podsmaz cebule i papryke. Dodaj pomidory i przyprawy. Zrob gniazda i zetnij jajka pod przykryciem.",
		Time:         "20-25 min",
	},
	{
		Title:        "Owsianka proteinowa z bananem",
		Tags:         "sniadanie fit wysokobialkowe szybkie",
		Why:          "Czesto wybierane szybkie sniadanie z dobrym balansem bialka i weglowodanow.",
		Ingredients:  "Platki owsiane, mleko lub napoj roslinny, jogurt skyr, banan, maslo orzechowe, cynamon.",
		Instructions: "Ugotuj platki na mleku, dodaj skyr i pokrojonego banana. Na koniec dodaj maslo orzechowe i cynamon.",
		Time:         "10-12 min",
	},
	{
		Title:        "Pasta aglio e olio",
		Tags:         "makaron wegetarianskie szybkie obiad",
		Why:          "Klasyczne danie wloskie, bardzo czesto polecane jako szybki i pewny przepis.",
		Ingredients:  "Spaghetti, czosnek, oliwa, chili, pietruszka, sol.",
		Instructions: "Ugotuj makaron al dente. Czosnek podsmaz na oliwie z chili. Wymieszaj z makaronem i pietruszka.",
		Time:         "15-20 min",
	},
	{
		Title:        "Makaron pesto z suszonymi pomidorami",
		Tags:         "makaron wegetarianskie szybkie",
		Why:          "Popularna opcja obiadowa, latwa i powtarzalna w domowym gotowaniu.",
		Ingredients:  "Penne, pesto bazyliowe, suszone pomidory, czosnek, parmezan, rukola.",
		Instructions: "Ugotuj makaron, na patelni podgrzej pesto z czosnkiem i suszonymi pomidorami, polacz z makaronem i rukola.",
		Time:         "18-22 min",
	},
	{
		Title:        "Dahl z czerwonej soczewicy",
		Tags:         "soczewica wegetarianskie weganskie curry bezmiesa",
		Why:          "Sprawdzona, sycaca propozycja oparta o popularne przepisy kuchni indyjskiej.",
		Ingredients:  "Czerwona soczewica, pomidory, cebula, czosnek, imbir, curry, mleko kokosowe.",
		Instructions: "Podsmaz cebule z przyprawami, dodaj soczewice i pomidory, gotuj do miekkosci, na koniec dodaj mleko kokosowe.",
		Time:         "30-35 min",
	},
	{
		Title:        "Curry z ciecierzycy i szpinaku",
		Tags:         "weganskie wegetarianskie curry bezmiesa ciecierzyca",
		Why:          "Czesto polecane danie roslinne, sycace i bogate w blonnik.",
		Ingredients:  "Ciecierzyca, mleko kokosowe, pomidory, cebula, czosnek, szpinak, curry, kolendra.",
		Instructions: "Podsmaz cebule z czosnkiem i curry. Dodaj pomidory, ciecierzyce i mleko kokosowe. Na koniec wmieszaj szpinak.",
		Time:         "25-30 min",
	},
	{
		Title:        "Tofu stir-fry z warzywami",
		Tags:         "weganskie wegetarianskie tofu azjatyckie szybkie fit",
		Why:          "Proste danie roslinne, dobrze sprawdza sie przy szybkich kolacjach.",
		Ingredients:  "Tofu naturalne, brokul, marchew, papryka, sos sojowy, imbir, czosnek, olej sezamowy.",
		Instructions: "Obsmaz tofu, dodaj warzywa i krotko smaz. Dolej sos sojowy z imbirem i czosnkiem, podawaj od razu.",
		Time:         "20-25 min",
	},
	{
		Title:        "Kurczak teriyaki z ryzem",
		Tags:         "kurczak drob azjatyckie ryz obiad",
		Why:          "Znany przepis azjatycki, czesto odtwarzany na podstawie autentycznych receptur.",
		Ingredients:  "Filet z kurczaka, sos sojowy, miod, czosnek, imbir, ryz, szczypiorek.",
		Instructions: "Obsmaz kurczaka, dodaj sos teriyaki i zredukuj. Podawaj z ugotowanym ryzem i szczypiorkiem.",
		Time:         "25-30 min",
	},
	{
		Title:        "Kurczak curry z mlekiem kokosowym",
		Tags:         "kurczak drob curry obiad",
		Why:          "Bardzo popularny klasyk domowy, latwy do odtworzenia krok po kroku.",
		Ingredients:  "Filet z kurczaka, cebula, czosnek, imbir, pasta curry, mleko kokosowe, ryz, limonka.",
		Instructions: "Podsmaz kurczaka i cebule, dodaj paste curry, potem mleko kokosowe. Gotuj kilka minut i podawaj z ryzem.",
		Time:         "30-35 min",
	},
	{
		Title:        "Pulpeciki z indyka w sosie pomidorowym",
		Tags:         "indyk drob obiad fit",
		Why:          "Lekkie danie miesne, czesto wybierane jako alternatywa dla ciezszych sosow.",
		Ingredients:  "Mielony indyk, jajko, cebula, czosnek, passata pomidorowa, bazylia, oliwa.",
		Instructions: "Uformuj pulpeciki, obsmaz je i dus w passacie z czosnkiem i bazylia do miekkosci.",
		Time:         "30-35 min",
	},
	{
		Title:        "Chili con carne",
		Tags:         "wolowina mieso ostre meksykanskie obiad",
		Why:          "Sprawdzony przepis jednogarnkowy, ceniony za intensywny smak i prostote.",
		Ingredients:  "Mielona wolowina, fasola czerwona, pomidory, cebula, czosnek, chili, kumin.",
		Instructions: "Podsmaz mieso z cebula, dodaj przyprawy, pomidory i fasole. Gotuj na wolnym ogniu do zageszczenia.",
		Time:         "35-45 min",
	},
	{
		Title:        "Gulasz wolowy z papryka",
		Tags:         "wolowina mieso klasyczne obiad",
		Why:          "Klasyczna propozycja obiadowa oparta o znane receptury domowe.",
		Ingredients:  "Wolowina gulaszowa, cebula, papryka, czosnek, koncentrat pomidorowy, bulion, majeranek.",
		Instructions: "Obsmaz wolowine partiami, dodaj warzywa i bulion, dus do miekkosci miesa.",
		Time:         "90-120 min",
	},
	{
		Title:        "Schab w sosie pieczarkowym",
		Tags:         "wieprzowina schab obiad klasyczne",
		Why:          "Tradycyjne danie obiadowe, latwe do podania z ziemniakami lub kasza.",
		Ingredients:  "Schab, pieczarki, cebula, czosnek, smietanka, bulion, natka pietruszki.",
		Instructions: "Obsmaz plastry schabu, dodaj pieczarki z cebula, podlej bulionem i zakoncz smietanka.",
		Time:         "40-50 min",
	},
	{
		Title:        "Szarpana wieprzowina z piekarnika",
		Tags:         "wieprzowina pulled pork pieczone",
		Why:          "Popularny przepis na miekkie mieso, dobre do bulek lub ziemniakow.",
		Ingredients:  "Lopatka wieprzowa, cebula, czosnek, papryka wedzona, musztarda, bulion.",
		Instructions: "Natrzyj mieso przyprawami, piecz pod przykryciem do pelnej miekkosci i rozdziel widelcami.",
		Time:         "3-4 h",
	},
	{
		Title:        "Dorsz pieczony z cytryna i koperkiem",
		Tags:         "ryba dorsz pieczone obiad",
		Why:          "Klasyczna propozycja rybna oparta o popularne przepisy domowe i restauracyjne.",
		Ingredients:  "Filet z dorsza, cytryna, maslo, koperek, czosnek, sol, pieprz.",
		Instructions: "Skrop dorsza cytryna, dopraw, poloz platki masla i piecz 15-18 minut w 200C. Posyp koperkiem.",
		Time:         "25-30 min",
	},
	{
		Title:        "Losos z patelni z maslem czosnkowym",
		Tags:         "ryba losos szybkie obiad",
		Why:          "Bardzo czesto wybierana opcja na szybki obiad z ryba.",
		Ingredients:  "Filet z lososia, maslo, czosnek, cytryna, natka pietruszki, sol, pieprz.",
		Instructions: "Obsmaz lososia od strony skory, dodaj maslo z czosnkiem, podlej sokiem z cytryny i podawaj z natka.",
		Time:         "15-20 min",
	},
	{
		Title:        "Krewetki z czosnkiem i chili",
		Tags:         "krewetki owoce morza szybkie",
		Why:          "Szybkie danie inspirowane kuchnia srodziemnomorska, czesto wybierane na kolacje.",
		Ingredients:  "Krewetki, czosnek, chili, oliwa, maslo, pietruszka, cytryna.",
		Instructions: "Na rozgrzanej patelni podsmaz czosnek i chili, dodaj krewetki i smaz 2-3 minuty, skrop cytryna.",
		Time:         "12-15 min",
	},
	{
		Title:        "Komosa ryzowa z pieczonymi warzywami",
		Tags:         "weganskie wegetarianskie bezglutenowe quinoa fit",
		Why:          "Bardzo uniwersalna, lekka propozycja na obiad lub kolacje.",
		Ingredients:  "Komosa ryzowa, cukinia, papryka, ciecierzyca, oliwa, czosnek, sok z cytryny.",
		Instructions: "Upiecz warzywa, ugotuj komose i polacz wszystko z ciecierzyca oraz dressingiem cytrynowym.",
		Time:         "30-35 min",
	},
	{
		Title:        "Leczo warzywne",
		Tags:         "wegetarianskie weganskie bezmiesa papryka szybkie",
		Why:          "Klasyk warzywny, prosty i latwy do przygotowania z podstawowych skladnikow.",
		Ingredients:  "Papryka, cukinia, cebula, pomidory, czosnek, oliwa, wedzona papryka.",
		Instructions: "Podsmaz cebule, dodaj warzywa i dus do miekkosci. Dopraw papryka i podawaj z pieczywem lub ryzem.",
		Time:         "25-30 min",
	},
	{
		Title:        "Zupa pomidorowa z ryzem",
		Tags:         "zupa klasyczne bezglutenowe ryz",
		Why:          "Sprawdzona, domowa propozycja na szybki i lekki obiad.",
		Ingredients:  "Passata pomidorowa, bulion, marchew, cebula, ryz, smietanka, bazylia.",
		Instructions: "Ugotuj warzywa w bulionie, dodaj passate i ryz, gotuj do miekkosci i zakoncz smietanka.",
		Time:         "30-35 min",
	},
	{
		Title:        "Zupa krem z pieczonej dyni",
		Tags:         "zupa dynia wegetarianskie bezglutenowe",
		Why:          "Powszechnie znana i wielokrotnie testowana propozycja sezonowa.",
		Ingredients:  "Dynia, cebula, czosnek, bulion, smietanka lub mleko kokosowe, pestki dyni.",
		Instructions: "Upiecz dynie z cebula i czosnkiem, zblenduj z bulionem, dopraw i podawaj z pestkami.",
		Time:         "35-45 min",
	},
	{
		Title:        "Frittata ze szpinakiem i feta",
		Tags:         "jajka sniadanie kolacja wegetarianskie",
		Why:          "Proste danie jajeczne, dobre na sniadanie, lunch lub kolacje.",
		Ingredients:  "Jajka, szpinak, feta, cebula, pomidorki koktajlowe, oliwa, pieprz.",
		Instructions: "Podsmaz cebule i szpinak, zalej roztrzepanymi jajkami, dodaj fete i zapiecz lub zetnij na malej mocy.",
		Time:         "20-25 min",
	},
}

// Entries returns the full catalog.
func Entries() []Entry {
	return entries
}
