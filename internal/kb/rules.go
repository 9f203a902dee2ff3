package kb

import "strings"

// Rule matches a normalized utterance against one KB topic. All terms in
// All must be present, and at least one term in Any when Any is non-empty.
type Rule struct {
	Topic string
	All   []string
	Any   []string
}

// rules is evaluated in order; the first match wins. Specific rules (e.g.
// airlines at a terminal) must stay ahead of the broad terminal rules,
// otherwise they would be shadowed.
var rules = []Rule{
	{Topic: "t1-airlines", All: []string{"t1"}, Any: []string{"airline", "airlines", "carrier", "which flights"}},
	{Topic: "t1-airlines", All: []string{"terminal 1"}, Any: []string{"airline", "airlines", "carrier", "which flights"}},
	{Topic: "t3-airlines", All: []string{"t3"}, Any: []string{"airline", "airlines", "carrier", "which flights"}},
	{Topic: "t3-airlines", All: []string{"terminal 3"}, Any: []string{"airline", "airlines", "carrier", "which flights"}},
	{Topic: "wifi", Any: []string{"wifi", "wi-fi", "internet"}},
	{Topic: "baggage", Any: []string{"baggage", "luggage", "allowance", "bag drop", "kiosk"}},
	{Topic: "security", Any: []string{"security", "scanner", "frisking", "liquids"}},
	{Topic: "immigration", Any: []string{"immigration", "visa", "passport control", "departure card"}},
	{Topic: "wheelchair", Any: []string{"wheelchair", "accessib", "special assistance", "pram"}},
	{Topic: "lounge", Any: []string{"lounge"}},
	{Topic: "atm", Any: []string{"atm", "cash machine", "currency exchange", "forex"}},
	{Topic: "metro", Any: []string{"metro", "airport express"}},
	{Topic: "taxi", Any: []string{"taxi", "cab", "uber", "ola"}},
	{Topic: "bus", Any: []string{"bus"}},
	{Topic: "lostfound", Any: []string{"lost and found", "lost my", "left behind", "left my"}},
	{Topic: "flight-status", Any: []string{"flight status", "delayed", "gate change", "departure board", "arrivals board"}},
	{Topic: "t1", Any: []string{"t1", "terminal 1"}},
	{Topic: "t2", Any: []string{"t2", "terminal 2"}},
	{Topic: "t3", Any: []string{"t3", "terminal 3"}},
	{Topic: "links", Any: []string{"website", "helpline", "contact number", "phone number"}},
}

func (r Rule) matches(normalized string) bool {
	for _, term := range r.All {
		if !strings.Contains(normalized, term) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, term := range r.Any {
		if strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}

// Resolve matches an utterance against the ordered rule list and returns
// the first matching rule's fact verbatim. ok is false when no rule
// matches, signaling the caller to fall back to generative resolution.
func Resolve(utterance string) (fact string, ok bool) {
	normalized := strings.ToLower(utterance)
	for _, r := range rules {
		if r.matches(normalized) {
			return facts[r.Topic], true
		}
	}
	return "", false
}
