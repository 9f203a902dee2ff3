// Package kb holds the static airport knowledge base and the keyword rules
// that map user utterances onto it.
package kb

// facts is the knowledge base: one addressable fact per topic key. Content
// is loaded once and never mutated at runtime.
var facts = map[string]string{
	"t1": "Terminal 1 (T1) handles most domestic low-cost flights. " +
		"Check-in counters open 3 hours before departure and close 60 minutes before. " +
		"Gates 1-18 are on the ground level; follow the yellow signboards from the entry gates.\n<MAP>",
	"t2": "Terminal 2 (T2) handles a mix of domestic flights. " +
		"It is a short shuttle ride from T1 (free shuttle every 20 minutes from Gate 5). " +
		"Allow at least 45 minutes if you need to transfer between terminals.\n<MAP>",
	"t3": "Terminal 3 (T3) is the international terminal and also serves full-service domestic flights. " +
		"International check-in opens 4 hours before departure. Immigration and customs are on Level 2.\n<MAP>",
	"t1-airlines": "Airlines operating from Terminal 1: IndiGo, SpiceJet and Akasa Air (domestic only). " +
		"If you are flying Air India or Vistara, please head to Terminal 3.",
	"t3-airlines": "Airlines operating from Terminal 3: Air India, Vistara, Air India Express and all international carriers. " +
		"IndiGo international departures also leave from T3.",
	"wifi": "Free Wi-Fi: connect to the network \"Airport_Free_WiFi\", enter your mobile number on the login page, " +
		"and type in the one-time password you receive by SMS. The first 45 minutes are free.",
	"baggage": "Cabin baggage: one bag up to 7 kg. Check-in baggage: 15 kg on domestic economy (airline rules vary). " +
		"Self-service bag-drop kiosks are next to the check-in counters; keep your baggage tag receipt until you exit.",
	"security": "At security check: remove laptops, power banks and metal items into the tray, " +
		"keep your boarding pass in hand, and send your cabin bag through the scanner. " +
		"Liquids above 100 ml are not allowed in cabin baggage.",
	"immigration": "Immigration (international flights only): keep your passport, visa and boarding pass ready. " +
		"Fill in the departure card before joining the queue. Counters for senior citizens and families are on the left.",
	"lounge": "Lounges are located after security: near Gate 12 in T1 and on Level 3 in T3. " +
		"Entry via Priority Pass, select credit cards, or paid walk-in.",
	"atm": "ATMs and currency exchange counters are available in the arrivals hall and after security near the food court. " +
		"Currency exchange at the airport charges a service fee; ATMs usually give a better rate.",
	"wheelchair": "Wheelchair and special assistance: request it at your airline's check-in counter, " +
		"or call the airport helpdesk. Assistance is free of charge and covers check-in to boarding gate.",
	"metro": "The Airport Express metro runs from the city centre to the airport every 10-15 minutes, " +
		"from about 5:00 to 23:30. The airport station is connected to T3; a free shuttle links it to T1.",
	"taxi": "Prepaid taxi counters are in the arrivals hall. App cabs (Uber/Ola) pick up from the designated " +
		"pickup zone; follow the \"App Cabs\" signs. Avoid unsolicited offers inside the terminal.",
	"bus": "Airport buses run round the clock between the terminals and major city points. " +
		"The bus stand is outside the arrivals area; tickets are sold on board.",
	"lostfound": "Lost something? Visit the Lost & Found office in the arrivals hall (open 24x7) " +
		"or call the airport helpdesk at +91-124-337-6000 with a description of the item.",
	"flight-status": "For live flight status, check the departure boards in the terminal, your airline's app, " +
		"or the airport website. Gate changes are announced on the boards first.",
	"links": "Useful contacts: airport helpdesk +91-124-337-6000, airport website for flight status and terminal maps." +
		"\n<QUICK_REPLIES>Flight status | Terminal map | Helpdesk",
}

// Fact returns the fact bound to a topic key. Mainly useful in tests; the
// resolver goes through Resolve.
func Fact(topic string) (string, bool) {
	f, ok := facts[topic]
	return f, ok
}
