package notifier

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/julianstephens/nourish/internal/models"
)

const (
	keyBreakfast     = "meal.breakfast"
	keyLunch         = "meal.lunch"
	keyDinner        = "meal.dinner"
	keyMealTitle     = "reminder.meal.title"
	keyMealBody      = "reminder.meal.body"
	keyFollowUpTitle = "reminder.followup.title"
	keyFollowUpBody  = "reminder.followup.body"
	keyWaterTitle    = "reminder.water.title"
	keyWaterBody     = "reminder.water.body"
	keyPlanTitle     = "event.plan.title"
	keyPlanBody      = "event.plan.body"
	keyStreakTitle   = "event.streak.title"
	keyStreakBody    = "event.streak.body"
	keyReassureTitle = "event.reassure.title"
	keyReassureBody  = "event.reassure.body"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		keyBreakfast:     "Breakfast 🥞",
		keyLunch:         "Lunch 🥗",
		keyDinner:        "Dinner 🍝",
		keyMealTitle:     "%s Time!",
		keyMealBody:      "Don't forget to eat well! 🌸",
		keyFollowUpTitle: "I'm sorry... 😢",
		keyFollowUpBody:  "I guess you skipped %s... Please take care of yourself.",
		keyWaterTitle:    "Water Time! 💧",
		keyWaterBody:     "Treat yourself to a glass of water! 🌊",
		keyPlanTitle:     "Great! 💖",
		keyPlanBody:      "Your plan is ready and reminders are set.",
		keyStreakTitle:   "Congratulations! 🔥",
		keyStreakBody:    "Streak! You've eaten well for %d days!",
		keyReassureTitle: "Enjoy your meal! 🌸",
		keyReassureBody:  "I cancelled the sad reminder. You're doing great!",
	},
	language.Turkish: {
		keyBreakfast:     "Kahvaltı 🥞",
		keyLunch:         "Öğle Yemeği 🥗",
		keyDinner:        "Akşam Yemeği 🍝",
		keyMealTitle:     "%s Vakti!",
		keyMealBody:      "Sağlıklı beslenmeyi unutma! 🌸",
		keyFollowUpTitle: "Üzgünüm... 😢",
		keyFollowUpBody:  "Sanırım %s yemedin... Lütfen kendine iyi bak.",
		keyWaterTitle:    "Su Vakti! 💧",
		keyWaterBody:     "Kendine bir bardak su ısmarla! 🌊",
		keyPlanTitle:     "Harika! 💖",
		keyPlanBody:      "Planın oluşturuldu ve bildirimler ayarlandı.",
		keyStreakTitle:   "Tebrikler! 🔥",
		keyStreakBody:    "Seri yaptın! %d gündür sağlıklısın!",
		keyReassureTitle: "Afiyet Olsun! 🌸",
		keyReassureBody:  "Üzgün bildirimi iptal ettim. Harikasın!",
	},
}

var (
	messageCatalog catalog.Catalog
	matcher        language.Matcher
)

func init() {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	tags := []language.Tag{language.English}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
		if tag != language.English {
			tags = append(tags, tag)
		}
	}
	messageCatalog = b
	matcher = language.NewMatcher(tags)
}

// Messages renders user-facing text in one locale.
type Messages struct {
	p *message.Printer
}

// NewMessages picks the closest supported locale, falling back to English.
func NewMessages(locale string) *Messages {
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	return &Messages{p: message.NewPrinter(language.Make(base.String()), message.Catalog(messageCatalog))}
}

// SupportedLocales lists the locales with a full translation.
func SupportedLocales() []string {
	return []string{"en", "tr"}
}

func (m *Messages) MealName(meal models.MealID) string {
	switch meal {
	case models.MealBreakfast:
		return m.p.Sprintf(keyBreakfast)
	case models.MealLunch:
		return m.p.Sprintf(keyLunch)
	case models.MealDinner:
		return m.p.Sprintf(keyDinner)
	}
	return string(meal)
}

func (m *Messages) MealReminder(name string) (title, body string) {
	return m.p.Sprintf(keyMealTitle, name), m.p.Sprintf(keyMealBody)
}

func (m *Messages) FollowUp(name string) (title, body string) {
	return m.p.Sprintf(keyFollowUpTitle), m.p.Sprintf(keyFollowUpBody, name)
}

func (m *Messages) Water() (title, body string) {
	return m.p.Sprintf(keyWaterTitle), m.p.Sprintf(keyWaterBody)
}

func (m *Messages) PlanConfirmed() (title, body string) {
	return m.p.Sprintf(keyPlanTitle), m.p.Sprintf(keyPlanBody)
}

func (m *Messages) StreakExtended(count int) (title, body string) {
	return m.p.Sprintf(keyStreakTitle), m.p.Sprintf(keyStreakBody, count)
}

func (m *Messages) Reassurance() (title, body string) {
	return m.p.Sprintf(keyReassureTitle), m.p.Sprintf(keyReassureBody)
}
