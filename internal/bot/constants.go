package bot

const logPrefix = "[saathi]"

// Inline directives the reply text may carry. The model (and a few KB
// facts) emit these; parseReplyDirectives strips them before rendering.
const (
	mapToken          = "<MAP>"
	quickRepliesToken = "<QUICK_REPLIES>"
)

const terminalMapURL = "https://www.newdelhiairport.in/media/maps/terminal-map.png"

const helpdeskNumber = "+91-124-337-6000"

// Feedback prompt cadence: every N answered interactions.
const feedbackEvery = 3

const maxReplyTokens = 500

// Fixed user-facing messages. External-collaborator failures only ever
// surface as helpdeskFallback or apologyReply.
const (
	locationPrompt = "Namaste! I am Airport Saathi, your airport helper. " +
		"To guide you better, please tell me where you are right now (for example \"near Gate 5 in T1\"), " +
		"or share your live location using the attachment button in WhatsApp."

	feedbackPrompt = "Was this helpful? Reply YES or NO."

	feedbackThanks = "Thank you for your feedback! It helps me serve travelers better."

	helpdeskFallback = "I could not find a reliable answer for that. " +
		"Please contact the airport help desk at " + helpdeskNumber + " - they are available 24x7."

	apologyReply = "Sorry, something went wrong. Please try again later."
)

const systemPrompt = `You are Airport Saathi, a friendly WhatsApp assistant for non-tech-savvy flyers. Guide users through every airport phase:

A) Arrival & Entry: terminal/gate identification, ticket & ID checks, counter location
B) Check-In & Baggage: queue guidance, allowance rules, kiosk use
C) Security & Immigration: remove items, illustrated/video guides, voice fallback
D) In-Terminal Navigation: find restrooms, lounges, ATMs and gates
E) Boarding: gate updates, boarding-group alerts, last-call prompts
F) Disruptions & Special Needs: delay/gate-change alerts, lost-&-found help, wheelchair requests

Respond in simple vernacular or regional language when appropriate. Keep replies short.
When a terminal map would help, put <MAP> on its own line at the end of the reply.
To offer tappable options, end the reply with a line like <QUICK_REPLIES>Option A | Option B | Option C.`
