// Package locale holds the German/English string table for everything the
// API returns as user-facing text: weekday labels, unexpected-event labels,
// model names and explanations, and order feedback.
package locale

import "time"

// Supported language tags. German is the fallback.
const (
	German  = "Deutsch"
	English = "English"
)

var table = map[string]map[string]string{
	// data fields
	"Monday":    {German: "Montag", English: "Monday"},
	"Tuesday":   {German: "Dienstag", English: "Tuesday"},
	"Wednesday": {German: "Mittwoch", English: "Wednesday"},
	"Thursday":  {German: "Donnerstag", English: "Thursday"},
	"Friday":    {German: "Freitag", English: "Friday"},
	"Saturday":  {German: "Samstag", English: "Saturday"},
	"Sunday":    {German: "Sonntag", English: "Sunday"},

	"holidayevent": {German: "Feiertag - Laden geschlossen", English: "Holiday - store closed"},

	// unexpected events
	"unexpEventConstruction": {German: "Baustelle vorm Eingang", English: "Construction site in front of store"},
	"unexpEventDemo":         {German: "Demonstration für Kuchenfreunde in der Nähe", English: "Cake Lovers demonstration nearby"},
	"unexpEventFlea":         {German: "Flohmarkt in der Straße", English: "Fleamarket on same street"},
	"unexpEventOffer":        {German: "Sonderangebot der Konkurrenz", English: "Special offer at a competitor's store"},
	"unexpEventStrike":       {German: "Streik im öffentlichen Nahverkehr", English: "Public transportation strike"},
	"unexpEventSportsGood":   {German: "Lokalmannschaft gewinnt Spiel", English: "Local team wins match"},
	"unexpEventSportsBad":    {German: "Lokalmannschaft verliert Spiel", English: "Local team loses match"},
	"unexpEventBirthday":     {German: "Großbestellung für Geburtstagsparty", English: "Special order for a birthday"},

	// model names and explanations
	"modelHeu": {German: "Heuristik", English: "heuristic"},
	"modelKNN": {German: "KNN", English: "KNN"},
	"modelXGB": {German: "XGBoost", English: "XGBoost"},

	"modelInfoHeuristic": {
		German:  "Beim heuristischen Vorhersageansatz wird das Muster ausgenutzt, dass gleiche Wochentage häufig ähnliche Verkaufszahlen aufweisen. Durch einen Blick auf die Verkäufe der zurückliegenden gleichen Wochentage ist eine Einschätzung der morgigen Verkäufe möglich. Die Heuristik berechnet den Mittelwert aus den letzten 4 selben Wochentagen und sagt diesen voraus. Diese Tage sind:",
		English: "The heuristic forecasting approach takes advantage of the pattern that the same weekdays often show similar sales numbers. By looking at sales from past occurrences of the same weekday, it is possible to estimate tomorrow's sales. The heuristic calculates the average of the last four occurrences of the same weekday and uses that as the prediction. These days are:",
	},
	"modelInfoKNN": {
		German:  "Der k-nächste-Nachbarn-Algorithmus (k-NN) sucht in den historischen Verkaufsdaten nach vergangenen Tagen, die dem vorherzusagenden Tag am ähnlichsten sind. Dabei werden Faktoren wie Wochentag, Wetter und Feiertage berücksichtigt. Die vorhergesagte Verkaufszahl ist der Durchschnitt der Verkaufszahlen der ähnlichsten vergangenen Tage:",
		English: "The k-nearest neighbors (k-NN) algorithm searches historical sales data for past days that are most similar to tomorrow. It takes into account factors such as weekday, weather, and special days. The predicted sales number is the average of the sales figures from the most similar past days:",
	},
	"modelInfoXGB": {
		German:  "XGBoost ist ein komplexes Machine-Learning-Modell, das Vorhersagen basierend auf Mustern in historischen Daten trifft. Im Gegensatz zu einfacheren Methoden liefert es keine leicht verständlichen Erklärungen für seine Prognosen.",
		English: "XGBoost is a complex machine learning model that makes predictions based on patterns in historical data. Unlike simpler methods, it does not provide easily interpretable reasons for its predictions.",
	},

	// order feedback
	"feedbackTooMany":   {German: "Es sind viele Kuchen übrig geblieben. Verschwendung lässt sich reduzieren durch kleinere Bestellungen.", English: "You ordered too many cakes for today. Consider reducing your order tomorrow."},
	"feedbackTooFew":    {German: "Es waren zu wenig Kuchen da. KundInnen mussten ohne Kuchen nach Hause gehen.", English: "You ordered too few cakes for today. Customers left without a purchase."},
	"feedbackJustRight": {German: "Gut gemacht! Bestellung und Bedarf waren annähernd gleich.", English: "Great job! Your order matched demand well."},
}

// Get returns the translation of key for lang. Unknown languages fall back
// to German; unknown keys are returned as-is so missing entries stay visible.
func Get(key, lang string) string {
	entry, ok := table[key]
	if !ok {
		return key
	}
	if s, ok := entry[lang]; ok {
		return s
	}
	return entry[German]
}

// Weekday returns the localized label for a weekday.
func Weekday(wd time.Weekday, lang string) string {
	return Get(wd.String(), lang)
}

// Supported reports whether lang is a known language tag.
func Supported(lang string) bool {
	return lang == German || lang == English
}
