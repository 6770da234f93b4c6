// Package i18n holds the interface strings of the logbook in English and
// Arabic and resolves the "system" language from the host locale.
package i18n

import (
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carcare/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Key names one interface string.
type Key string

const (
	AppTitle           Key = "appTitle"
	WelcomeTitle       Key = "welcomeTitle"
	WelcomeSubtitle    Key = "welcomeSubtitle"
	CarNamePlaceholder Key = "carNamePlaceholder"
	GetStarted         Key = "getStarted"
	AddEntry           Key = "addEntry"
	Settings           Key = "settings"
	TotalEntries       Key = "totalEntries"
	TotalCost          Key = "totalCost"
	LastService        Key = "lastService"
	SearchPlaceholder  Key = "searchPlaceholder"
	AllCategories      Key = "allCategories"
	MaintenanceHistory Key = "maintenanceHistory"
	ExportPDF          Key = "exportPDF"
	ExportData         Key = "exportData"
	NoRecords          Key = "noRecords"
	AddFirstEntry      Key = "addFirstEntry"
	UpcomingTitle      Key = "upcomingTitle"
	OverdueTitle       Key = "overdueTitle"
)

var catalogs = map[models.Language]map[Key]string{
	models.LanguageEnglish: {
		AppTitle:           "CarCare Log",
		WelcomeTitle:       "Welcome to CarCare Log",
		WelcomeSubtitle:    "Your personal car maintenance companion",
		CarNamePlaceholder: "Enter your car name or model",
		GetStarted:         "Get Started",
		AddEntry:           "Add Entry",
		Settings:           "Settings",
		TotalEntries:       "Total Entries",
		TotalCost:          "Total Cost",
		LastService:        "Last Service",
		SearchPlaceholder:  "Search maintenance logs...",
		AllCategories:      "All Categories",
		MaintenanceHistory: "Maintenance History",
		ExportPDF:          "Export PDF",
		ExportData:         "Export Data",
		NoRecords:          "No maintenance records yet",
		AddFirstEntry:      "Add First Entry",
		UpcomingTitle:      "Upcoming Maintenance",
		OverdueTitle:       "Overdue Maintenance",
	},
	models.LanguageArabic: {
		AppTitle:           "سجل العناية بالسيارة",
		WelcomeTitle:       "مرحبًا بك في سجل العناية بالسيارة",
		WelcomeSubtitle:    "رفيقك الشخصي في صيانة السيارات",
		CarNamePlaceholder: "أدخل اسم أو موديل سيارتك",
		GetStarted:         "ابدأ الآن",
		AddEntry:           "إضافة إدخال",
		Settings:           "الإعدادات",
		TotalEntries:       "إجمالي الإدخالات",
		TotalCost:          "التكلفة الإجمالية",
		LastService:        "آخر خدمة",
		SearchPlaceholder:  "ابحث في سجلات الصيانة...",
		AllCategories:      "جميع الفئات",
		MaintenanceHistory: "سجل الصيانة",
		ExportPDF:          "تصدير PDF",
		ExportData:         "تصدير البيانات",
		NoRecords:          "لا توجد سجلات صيانة حتى الآن",
		AddFirstEntry:      "إضافة أول إدخال",
		UpcomingTitle:      "الصيانة القادمة",
		OverdueTitle:       "الصيانة المتأخرة",
	},
}

var supported = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Arabic,
})

// localeVars are consulted in POSIX precedence order.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Detect picks ar or en from the host locale. Anything that is not Arabic,
// including an unset or "C" locale, is English.
func Detect(getenv func(string) string) models.Language {
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, v := range localeVars {
		loc := getenv(v)
		if loc == "" {
			continue
		}
		return matchLocale(loc)
	}
	return models.LanguageEnglish
}

func matchLocale(loc string) models.Language {
	// en_US.UTF-8@euro -> en-US
	if i := strings.IndexAny(loc, ".@"); i >= 0 {
		loc = loc[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(loc, "_", "-"))
	if err != nil {
		return models.LanguageEnglish
	}
	_, idx, conf := supported.Match(tag)
	if idx == 1 && conf != language.No {
		return models.LanguageArabic
	}
	return models.LanguageEnglish
}

// Resolve turns a stored preference into a concrete language. "system"
// consults the host locale; unknown values fall back to English.
func Resolve(lang models.Language, getenv func(string) string) models.Language {
	switch lang {
	case models.LanguageEnglish, models.LanguageArabic:
		return lang
	case models.LanguageSystem:
		return Detect(getenv)
	}
	return models.LanguageEnglish
}

// Translator looks up strings for one resolved language.
type Translator struct {
	lang models.Language
}

func New(lang models.Language, getenv func(string) string) Translator {
	return Translator{lang: Resolve(lang, getenv)}
}

func (t Translator) Language() models.Language { return t.lang }

// RTL reports whether the language is written right to left.
func (t Translator) RTL() bool { return t.lang == models.LanguageArabic }

// T returns the string for key, falling back to English and then to the key
// itself.
func (t Translator) T(key Key) string {
	if s, ok := catalogs[t.lang][key]; ok {
		return s
	}
	if s, ok := catalogs[models.LanguageEnglish][key]; ok {
		return s
	}
	return string(key)
}

var printer = message.NewPrinter(language.English)

// FormatNumber groups thousands: 12345 -> "12,345".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatMileage renders a stored mileage as "12,345 miles". The leading
// integer part is used; text without one is shown as typed.
func FormatMileage(raw string) string {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return raw + " miles"
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return raw + " miles"
	}
	return FormatNumber(n) + " miles"
}
