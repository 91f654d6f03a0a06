package lexicon

// urduPhrases mirrors the Romanized-Urdu→English substitution table.
// Entries are in source order; a repeated key keeps its later value.
var urduPhrases = []phrasePair{
	// Relative dates
	{"kal", "tomorrow"},
	{"aaj", "today"},
	{"parso", "day after tomorrow"},
	{"kal se pehle", "yesterday"},
	{"parson kal", "day after tomorrow"},

	// Days of week
	{"Monday", "Monday"},
	{"Tuesday", "Tuesday"},
	{"Wednesday", "Wednesday"},
	{"Thursday", "Thursday"},
	{"Friday", "Friday"},
	{"Saturday", "Saturday"},
	{"Sunday", "Sunday"},
	{"Somvar", "Monday"},
	{"Mangal", "Tuesday"},
	{"Budh", "Wednesday"},
	{"Jumeraat", "Thursday"},
	{"Juma", "Friday"},
	{"Hafta", "Saturday"},
	{"Itwar", "Sunday"},

	// Time periods
	{"agla", "next"},
	{"agle", "next"},
	{"pichla", "last"},
	{"ye", "this"},
	{"hafta", "week"},
	{"mahina", "month"},
	{"mahine", "month"},
	{"saal", "year"},

	// Time expressions
	{"mein", "in"},
	{"andar", "within"},
	{"din", "days"},
	{"dino", "days"},
	{"haftay", "weeks"},
	{"mahinay", "months"},
	{"ghante", "hours"},
	{"ghanton", "hours"},
	{"minute", "minutes"},
	{"min", "minutes"},
	{"raat", "tonight"},
	{"shaam", "evening"},
	{"subah", "morning"},
	{"dopahar", "afternoon"},
	{"baje", "AM"},
	{"tak", "by"},

	// Prepositions
	{"pehle", "before"},
	{"baad", "after"},

	// Seasons
	{"bahar", "spring"},
	{"garmi", "summer"},
	{"kharif", "fall"},
	{"sardi", "winter"},

	// Academic and fiscal terms
	{"tarmim", "term"},
	{"mosam", "semester"},
	{"mali saal", "fiscal year"},

	// Deadline keywords
	{"jama karna", "submit"},
	{"jama karna hai", "submit"},
	{"mukhatam karna", "complete"},
	{"turn in karna", "submit"},
	{"zarurat hai", "required"},
	{"mangte hain", "needed"},
	{"dena hai", "required"},
	{"karna hai", "to do"},
	{"karni hai", "to do"},
	{"jama hona", "submission"},
	{"mukhatam hona", "completion"},
	{"akhri tareekh", "last date"},
	{"antim tareekh", "final date"},
	{"khatam hone ki tareekh", "expiration date"},
	{"khatam hone ka waqt", "expiration time"},
	{"waqt khatam", "time expires"},
	{"muddat khatam", "deadline"},
	{"adai karni hai", "payment due"},
	{"ada karna", "pay"},
	{"hogi", "will be"},
	{"honge", "will be"},
	{"taiyar", "ready"},
	{"ki jaegi", "will be done"},
	{"sare", "all"},
	{"documents", "documents"},

	// Number words
	{"ek", "one"},
	{"do", "two"},
	{"teen", "three"},
	{"chaar", "four"},
	{"paanch", "five"},
	{"chhe", "six"},
	{"saat", "seven"},
	{"aath", "eight"},
	{"nau", "nine"},
	{"das", "ten"},
	{"gyarah", "eleven"},
	{"barah", "twelve"},
	{"terah", "thirteen"},
	{"chaudah", "fourteen"},
	{"pandrah", "fifteen"},
	{"solah", "sixteen"},
	{"satrah", "seventeen"},
	{"atharah", "eighteen"},
	{"unnais", "nineteen"},
	{"bees", "twenty"},

	// Canned whole-message phrases
	{"kal submit karna hai", "submit tomorrow"},
	{"aaj se pehle jama karna hai", "submit today"},
	{"agla monday tak assignment jama karni hai", "submit assignment next monday"},
	{"parso tak payment karni hai", "make payment day after tomorrow"},
	{"sare documents within seven days jama karna honge", "all documents will be submitted within seven days"},

	// Abbreviations
	{"eod", "end of day"},
	{"asap", "as soon as possible"},
	{"close of business", "end of day"},
	{"midnight", "midnight"},
}

// keywordWeights is the weighted deadline-keyword table. Entries are in
// source order; a repeated keyword keeps its later weight.
var keywordWeights = []weightPair{
	{"deadline", 1.0}, {"due", 0.95}, {"submit by", 0.95}, {"complete by", 0.92},
	{"finish by", 0.92}, {"deliver by", 0.9}, {"respond by", 0.85}, {"reply by", 0.85},
	{"turn in by", 0.9}, {"assignment due", 0.95}, {"project due", 0.95},
	{"homework due", 0.92}, {"report due", 0.92}, {"paper due", 0.92}, {"exam due", 0.95},
	{"quiz due", 0.9}, {"test due", 0.9}, {"final due", 0.95}, {"presentation due", 0.92},
	{"proposal due", 0.92}, {"application due", 0.92}, {"required by", 0.9},
	{"expected by", 0.85}, {"needed by", 0.85}, {"must be submitted", 0.95},
	{"must be completed", 0.92}, {"must finish", 0.92}, {"must deliver", 0.9},
	{"should be submitted", 0.85}, {"should be completed", 0.82},
	{"target date", 0.8}, {"target", 0.75}, {"cutoff", 0.8}, {"cut off", 0.8},
	{"last date", 0.9}, {"final date", 0.85}, {"end date", 0.8},
	{"expiration date", 0.85}, {"expiry date", 0.85}, {"expires", 0.8},
	{"payment due", 0.9}, {"bill due", 0.9}, {"rent due", 0.9},
	{"subscription ends", 0.85}, {"membership expires", 0.85},
	{"submit", 0.9}, {"jama", 0.9}, {"karna", 0.8}, {"karni", 0.8}, {"dena", 0.8},
	{"required", 0.85}, {"require", 0.85}, {"payment", 0.85}, {"assignment", 0.8},
	{"report", 0.8}, {"documents", 0.7}, {"ensure", 0.7}, {"please", 0.6},
	{"finish", 0.85}, {"complete", 0.85}, {"done", 0.85}, {"end", 0.8},
	{"must", 0.9}, {"should", 0.8}, {"gotta", 0.8}, {"send", 0.8}, {"turn in", 0.8},
	{"deliver", 0.8}, {"provide", 0.75}, {"give", 0.7},
	{"eod", 0.9}, {"cob", 0.9}, {"eow", 0.85}, {"asap", 0.8},
	{"jama karna", 0.95}, {"submit karna", 0.9}, {"payment karni", 0.85},
	{"assignment jama", 0.8}, {"report jama", 0.9}, {"kal submit", 0.9},
	{"aaj se pehle", 0.8}, {"agla monday", 0.8}, {"parso tak", 0.8},
	{"sare documents", 0.7}, {"jama karna honge", 0.95},
	{"report submit", 0.95}, {"jama karna hai", 0.99},
	{"aaj se pehle jama", 0.99}, {"jama karna", 0.99},
	{"within seven days jama", 0.99}, {"jama", 0.99},
	{"by", 0.85}, {"until", 0.8}, {"till", 0.8}, {"ends", 0.8},
	{"at", 0.7}, {"sharp", 0.7}, {"noon", 0.8}, {"midnight", 0.8},
	{"dopahar", 0.8}, {"subah", 0.8}, {"shaam", 0.8},
	{"born", 0.2}, {"birth", 0.2}, {"graduated", 0.2}, {"graduation", 0.2},
	{"started", 0.2}, {"begin", 0.2}, {"was", 0.2}, {"were", 0.2},
	{"i graduated", 0.1}, {"i was born", 0.1},
	{"needs to be", 0.9}, {"has to be", 0.9}, {"scheduled for", 0.85}, {"set for", 0.85},
	{"planned for", 0.85}, {"intended for", 0.8}, {"meant for", 0.8},
	{"evaluation", 0.8}, {"appraisal", 0.8}, {"assessment", 0.8},
	{"review", 0.8}, {"analysis", 0.75}, {"study", 0.75},
	{"delivery", 0.85}, {"shipment", 0.8}, {"package", 0.75},
	{"order", 0.8}, {"purchase", 0.8}, {"buy", 0.75}, {"sale", 0.8}, {"sell", 0.75},
	{"contract", 0.8}, {"agreement", 0.8}, {"deal", 0.75}, {"transaction", 0.75},
	{"invoice", 0.8}, {"bill", 0.8},
	{"salary", 0.8}, {"wage", 0.8}, {"pay", 0.8}, {"income", 0.75},
	{"reporting", 0.8}, {"filing", 0.8}, {"submission", 0.9},
	{"audit", 0.8}, {"inspection", 0.8},
	{"compliance", 0.8}, {"regulation", 0.75}, {"policy", 0.75}, {"procedure", 0.75},
	{"process", 0.75}, {"method", 0.7}, {"technique", 0.7}, {"approach", 0.7},
	{"strategy", 0.7}, {"tactic", 0.7}, {"plan", 0.8}, {"planning", 0.8},
	{"forecast", 0.75}, {"prediction", 0.75}, {"estimate", 0.75},
	{"calculation", 0.7}, {"computation", 0.7},
	{"examination", 0.75}, {"investigation", 0.75}, {"research", 0.75},
	{"exploration", 0.7}, {"discovery", 0.7}, {"finding", 0.7},
	{"result", 0.7}, {"outcome", 0.7}, {"conclusion", 0.7}, {"decision", 0.7},
	{"choice", 0.7}, {"option", 0.7}, {"alternative", 0.7},
	{"solution", 0.7}, {"answer", 0.7}, {"response", 0.7}, {"reply", 0.7},
	{"reaction", 0.7}, {"feedback", 0.7}, {"comment", 0.7},
	{"suggestion", 0.7}, {"recommendation", 0.7}, {"advice", 0.7},
	{"guidance", 0.7}, {"instruction", 0.7}, {"direction", 0.7},
	{"command", 0.7}, {"order", 0.7}, {"request", 0.8}, {"demand", 0.8},
	{"requirement", 0.85}, {"need", 0.8}, {"necessity", 0.8},
	{"obligation", 0.8}, {"duty", 0.8}, {"responsibility", 0.8},
	{"liability", 0.75}, {"accountability", 0.75}, {"authority", 0.7},
	{"power", 0.7}, {"control", 0.7}, {"influence", 0.7}, {"impact", 0.7},
	{"effect", 0.7}, {"consequence", 0.7}, {"issue", 0.7},
	{"problem", 0.7}, {"challenge", 0.7}, {"difficulty", 0.7},
	{"obstacle", 0.7}, {"barrier", 0.7}, {"hindrance", 0.7},
	{"delay", 0.7}, {"postponement", 0.7}, {"cancellation", 0.7},
	{"termination", 0.7}, {"ending", 0.7},
	{"finish", 0.8}, {"completion", 0.85}, {"achievement", 0.8},
	{"accomplishment", 0.8}, {"success", 0.7}, {"victory", 0.7},
	{"win", 0.7}, {"defeat", 0.7}, {"loss", 0.7}, {"failure", 0.7},
	{"mistake", 0.7}, {"error", 0.7}, {"fault", 0.7}, {"blame", 0.7},
	{"commitment", 0.8}, {"promise", 0.7}, {"pledge", 0.7}, {"vow", 0.7},
	{"oath", 0.7}, {"swear", 0.7}, {"guarantee", 0.7}, {"warranty", 0.7},
	{"assurance", 0.7}, {"insurance", 0.7}, {"protection", 0.7},
	{"security", 0.7}, {"safety", 0.7}, {"health", 0.7}, {"wellness", 0.7},
	{"fitness", 0.7}, {"exercise", 0.7}, {"workout", 0.7}, {"training", 0.8},
	{"education", 0.7}, {"learning", 0.7}, {"teaching", 0.7},
	{"school", 0.7}, {"college", 0.7}, {"university", 0.7}, {"institute", 0.7},
	{"academy", 0.7}, {"faculty", 0.7}, {"department", 0.7},
	{"division", 0.7}, {"section", 0.7}, {"unit", 0.7}, {"branch", 0.7},
	{"office", 0.7}, {"team", 0.8}, {"group", 0.7}, {"committee", 0.7},
	{"board", 0.7}, {"council", 0.7}, {"commission", 0.7}, {"assembly", 0.7},
	{"congress", 0.7}, {"parliament", 0.7}, {"senate", 0.7}, {"house", 0.7},
	{"court", 0.7}, {"tribunal", 0.7}, {"jury", 0.7}, {"panel", 0.7},
	{"forum", 0.7}, {"conference", 0.8}, {"seminar", 0.7}, {"workshop", 0.7},
	{"symposium", 0.7}, {"summit", 0.7}, {"meeting", 0.8}, {"gathering", 0.7},
	{"celebration", 0.7}, {"party", 0.7}, {"event", 0.7},
	{"occasion", 0.7}, {"ceremony", 0.7}, {"ritual", 0.7}, {"tradition", 0.7},
	{"custom", 0.7}, {"practice", 0.7}, {"habit", 0.7}, {"routine", 0.7},
	{"schedule", 0.8}, {"timetable", 0.7}, {"agenda", 0.8},
	{"program", 0.7}, {"programme", 0.7}, {"curriculum", 0.7}, {"syllabus", 0.7},
	{"course", 0.7}, {"class", 0.7}, {"lesson", 0.7},
	{"lecture", 0.7}, {"talk", 0.7}, {"speech", 0.7}, {"address", 0.7},
	{"presentation", 0.8}, {"performance", 0.8}, {"show", 0.7},
	{"display", 0.7}, {"exhibition", 0.7}, {"exhibit", 0.7},
	{"demonstration", 0.7}, {"demo", 0.7}, {"sample", 0.7}, {"example", 0.7},
	{"illustration", 0.7}, {"instance", 0.7}, {"case", 0.7},
	{"situation", 0.7}, {"circumstance", 0.7}, {"condition", 0.7},
	{"state", 0.7}, {"status", 0.7}, {"position", 0.7}, {"rank", 0.7},
	{"level", 0.7}, {"grade", 0.7}, {"category", 0.7},
	{"type", 0.7}, {"kind", 0.7}, {"sort", 0.7}, {"variety", 0.7},
	{"form", 0.7}, {"version", 0.7}, {"edition", 0.7}, {"release", 0.7},
	{"update", 0.7}, {"upgrade", 0.7}, {"improvement", 0.7},
	{"enhancement", 0.7}, {"modification", 0.7}, {"change", 0.7},
	{"revision", 0.7}, {"correction", 0.7}, {"adjustment", 0.7},
	{"adaptation", 0.7}, {"alteration", 0.7},
	{"transformation", 0.7}, {"conversion", 0.7}, {"transition", 0.7},
	{"shift", 0.7}, {"move", 0.7}, {"transfer", 0.7}, {"exchange", 0.7},
	{"substitution", 0.7}, {"replacement", 0.7}, {"substitute", 0.7},
	{"selection", 0.7}, {"pick", 0.7}, {"preference", 0.7}, {"favor", 0.7},
	{"support", 0.7}, {"endorsement", 0.7}, {"approval", 0.7},
	{"acceptance", 0.7}, {"agreement", 0.7}, {"consent", 0.7},
	{"permission", 0.7}, {"authorization", 0.7}, {"license", 0.7},
	{"permit", 0.7}, {"certificate", 0.7}, {"diploma", 0.7}, {"degree", 0.7},
	{"qualification", 0.7}, {"credential", 0.7},
	{"certification", 0.7}, {"accreditation", 0.7}, {"validation", 0.7},
	{"verification", 0.7}, {"confirmation", 0.7},
	{"authentication", 0.7}, {"ratification", 0.7}, {"sanction", 0.7},
}

// firstWordStoplist lists lowercase words that disqualify a capitalized
// message-leading token from being treated as a recipient name.
var firstWordStoplist = []string{
	"please", "you", "your", "the", "a", "an", "this", "that", "these", "those",
	"dear", "meeting", "meetings", "call", "calls", "appointment", "appointments",
	"no", "just", "great", "all", "team", "performance", "project", "report",
	"presentation", "document", "assignment", "documents", "review", "reviews",
	"proposal", "proposals", "budget", "budgets", "plan", "plans", "schedule",
	"schedules", "agenda", "agendas", "minutes", "tasks", "task", "work", "works",
	"job", "jobs", "duty", "duties", "responsibility", "responsibilities",
	"evaluation", "appraisal", "assessment", "analysis", "study", "research",
	"survey", "questionnaire", "form", "application", "resume", "cv", "portfolio",
	"delivery", "shipment", "package", "order", "purchase", "buy", "sale", "sell",
	"contract", "agreement", "deal", "transaction", "payment", "invoice", "bill",
	"salary", "wage", "pay", "income", "revenue", "profit", "loss", "expense",
	"cost", "price", "fee", "charge", "tax", "fine", "penalty", "interest",
	"loan", "mortgage", "credit", "debit", "account", "balance", "statement",
	"reporting", "filing", "submission", "audit", "inspection",
	"compliance", "regulation", "policy", "procedure", "process", "method",
	"technique", "approach", "strategy", "tactic", "planning", "forecast",
	"prediction", "estimate", "calculation", "computation", "examination",
	"investigation", "exploration", "discovery", "finding",
	"result", "outcome", "conclusion", "decision", "choice", "option", "alternative",
	"solution", "answer", "response", "reply", "reaction", "feedback", "comment",
	"suggestion", "recommendation", "advice", "guidance", "instruction", "direction",
	"command", "request", "demand", "requirement", "need", "necessity",
	"obligation", "liability", "accountability", "authority",
	"power", "control", "influence", "impact", "effect", "consequence",
	"issue", "problem", "challenge", "difficulty", "obstacle", "barrier", "hindrance",
	"delay", "postponement", "cancellation", "termination", "ending",
	"finish", "completion", "achievement", "accomplishment", "success", "victory",
	"win", "defeat", "failure", "mistake", "error", "fault", "blame",
	"commitment", "promise", "pledge", "vow", "oath", "swear", "guarantee",
	"warranty", "assurance", "insurance", "protection", "security", "safety",
	"health", "wellness", "fitness", "exercise", "workout", "training",
	"education", "learning", "teaching", "school", "college", "university",
	"institute", "academy", "faculty", "department", "division", "section",
	"unit", "branch", "office", "group", "committee", "board", "council",
	"commission", "assembly", "congress", "parliament", "senate", "house",
	"court", "tribunal", "jury", "panel", "forum", "conference", "seminar",
	"workshop", "symposium", "summit", "gathering", "celebration", "party",
	"event", "occasion", "ceremony", "ritual", "tradition", "custom",
	"practice", "habit", "routine", "timetable", "program", "programme",
	"curriculum", "syllabus", "course", "class", "lesson", "lecture", "talk",
	"speech", "address", "show", "display", "exhibition", "exhibit",
	"demonstration", "demo", "sample", "example", "illustration", "instance",
	"case", "situation", "circumstance", "condition", "state", "status",
	"position", "rank", "level", "grade", "category", "type", "kind", "sort",
	"variety", "version", "edition", "release", "update", "upgrade",
	"improvement", "enhancement", "modification", "change", "revision",
	"correction", "adjustment", "adaptation", "alteration", "transformation",
	"conversion", "transition", "shift", "move", "transfer", "exchange",
	"substitution", "replacement", "substitute", "selection", "pick",
	"preference", "favor", "support", "endorsement", "approval", "acceptance",
	"consent", "permission", "authorization", "license", "permit",
	"certificate", "diploma", "degree", "qualification", "credential",
	"certification", "accreditation", "validation", "verification",
	"confirmation", "authentication", "ratification", "sanction",
	"development", "quality", "market", "customer",
}
