package mealplan

import "encoding/json"

// menuVersion tags serialized menus so stored content stays parseable if
// the shape ever changes.
const menuVersion = 1

// Menu is the manager's weekly menu: breakfast on the five weekdays,
// brunch on the weekend, supper every day.
type Menu struct {
	Version   int           `json:"version"`
	Breakfast WeekdayMeals  `json:"breakfast"`
	Brunch    WeekendMeals  `json:"brunch"`
	Supper    FullWeekMeals `json:"supper"`
}

// WeekdayMeals holds one dish description per weekday.
type WeekdayMeals struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
}

// WeekendMeals holds one dish description per weekend day.
type WeekendMeals struct {
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

// FullWeekMeals holds one dish description for every day of the week.
type FullWeekMeals struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// EncodeMenu serializes a menu as the JSON stored in weekly_menus.menu_content.
func EncodeMenu(m Menu) (string, error) {
	m.Version = menuVersion
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeMenu parses stored menu content back into a Menu.
func DecodeMenu(content string) (Menu, error) {
	var m Menu
	if err := json.Unmarshal([]byte(content), &m); err != nil {
		return Menu{}, err
	}
	return m, nil
}
