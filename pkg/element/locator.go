package element

import "fmt"

// LocatorKind identifies one way to re-identify an element on-device.
type LocatorKind string

const (
	LocatorResourceID  LocatorKind = "resource-id"
	LocatorText        LocatorKind = "text"
	LocatorContentDesc LocatorKind = "content-desc"
	LocatorClassName   LocatorKind = "className"
	LocatorCoordinates LocatorKind = "coordinates"
)

// Locator priority ranks. Lower is preferred; coordinates is always last
// and always available.
const (
	PriorityResourceID  = 1
	PriorityText        = 2
	PriorityContentDesc = 3
	PriorityClassName   = 4
	PriorityCoordinates = 5
)

// Locator is one candidate method for re-identifying an Element, plus a
// generated Appium snippet for the same lookup.
type Locator struct {
	Kind     LocatorKind
	Value    string
	Priority int
	Code     string
}

// Locators enumerates all viable candidates for an element in fixed
// priority order. The coordinates candidate is appended unconditionally,
// so the result is never empty and is always sorted by ascending priority.
func Locators(e Element) []Locator {
	var locators []Locator

	if e.HasResourceID() {
		locators = append(locators, Locator{
			Kind:     LocatorResourceID,
			Value:    e.ResourceID,
			Priority: PriorityResourceID,
			Code:     fmt.Sprintf(`driver.find_element(AppiumBy.ID, "%s")`, e.ResourceID),
		})
	}

	if e.HasText() {
		locators = append(locators, Locator{
			Kind:     LocatorText,
			Value:    e.Text,
			Priority: PriorityText,
			Code:     fmt.Sprintf(`driver.find_element(AppiumBy.ANDROID_UIAUTOMATOR, "new UiSelector().text(\"%s\")")`, e.Text),
		})
	}

	if e.HasContentDesc() {
		locators = append(locators, Locator{
			Kind:     LocatorContentDesc,
			Value:    e.ContentDesc,
			Priority: PriorityContentDesc,
			Code:     fmt.Sprintf(`driver.find_element(AppiumBy.ANDROID_UIAUTOMATOR, "new UiSelector().description(\"%s\")")`, e.ContentDesc),
		})
	}

	if e.HasClassName() {
		locators = append(locators, Locator{
			Kind:     LocatorClassName,
			Value:    e.ClassName,
			Priority: PriorityClassName,
			Code:     fmt.Sprintf(`driver.find_element(AppiumBy.CLASS_NAME, "%s")`, e.ClassName),
		})
	}

	locators = append(locators, Locator{
		Kind:     LocatorCoordinates,
		Value:    fmt.Sprintf("(%d, %d)", e.X, e.Y),
		Priority: PriorityCoordinates,
		Code:     fmt.Sprintf("driver.tap([(%d, %d)])", e.X, e.Y),
	})

	return locators
}

// Best returns the preferred locator for an element: the first candidate
// in fixed priority order. Coordinates is the forced fallback when no
// attribute-based field qualifies, so Best is total.
func Best(e Element) Locator {
	return Locators(e)[0]
}
