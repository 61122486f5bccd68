package annotate

// closedClass tags function words. Ambiguous words get their most common tag.
var closedClass = map[string]string{
	// determiners
	"a": DET, "an": DET, "the": DET, "this": DET, "that": DET, "these": DET,
	"those": DET, "each": DET, "every": DET, "some": DET, "any": DET, "no": DET,
	"all": DET, "both": DET, "either": DET, "neither": DET, "another": DET,
	"such": DET, "what": DET, "which": DET, "whose": DET, "my": DET, "your": DET,
	"his": DET, "her": DET, "its": DET, "our": DET, "their": DET,

	// pronouns
	"i": PRON, "me": PRON, "we": PRON, "us": PRON, "you": PRON, "he": PRON,
	"him": PRON, "she": PRON, "it": PRON, "they": PRON, "them": PRON,
	"myself": PRON, "yourself": PRON, "himself": PRON, "herself": PRON,
	"itself": PRON, "ourselves": PRON, "themselves": PRON, "who": PRON,
	"whom": PRON, "someone": PRON, "something": PRON, "anyone": PRON,
	"anything": PRON, "everyone": PRON, "everything": PRON, "nobody": PRON,
	"nothing": PRON, "mine": PRON, "yours": PRON, "hers": PRON, "ours": PRON,
	"theirs": PRON,

	// adpositions
	"of": ADP, "in": ADP, "on": ADP, "at": ADP, "by": ADP, "for": ADP,
	"with": ADP, "about": ADP, "against": ADP, "between": ADP, "into": ADP,
	"through": ADP, "during": ADP, "before": ADP, "after": ADP, "above": ADP,
	"below": ADP, "from": ADP, "up": ADP, "down": ADP, "out": ADP, "off": ADP,
	"over": ADP, "under": ADP, "across": ADP, "among": ADP, "around": ADP,
	"behind": ADP, "beyond": ADP, "near": ADP, "per": ADP, "since": ADP,
	"toward": ADP, "towards": ADP, "upon": ADP, "within": ADP, "without": ADP,
	"via": ADP,

	// conjunctions
	"and": CCONJ, "or": CCONJ, "but": CCONJ, "nor": CCONJ, "yet": CCONJ,
	"if": SCONJ, "because": SCONJ, "while": SCONJ, "although": SCONJ,
	"though": SCONJ, "unless": SCONJ, "whether": SCONJ, "than": SCONJ,
	"whereas": SCONJ, "until": SCONJ,

	// auxiliaries
	"be": AUX, "am": AUX, "is": AUX, "are": AUX, "was": AUX, "were": AUX,
	"been": AUX, "being": AUX, "have": AUX, "has": AUX, "had": AUX,
	"do": AUX, "does": AUX, "did": AUX, "will": AUX, "would": AUX,
	"shall": AUX, "should": AUX, "can": AUX, "could": AUX, "may": AUX,
	"might": AUX, "must": AUX,

	// particles
	"to": PART, "not": PART,

	// adverbs without -ly
	"also": ADV, "very": ADV, "too": ADV, "so": ADV, "just": ADV, "still": ADV,
	"already": ADV, "even": ADV, "never": ADV, "always": ADV, "often": ADV,
	"here": ADV, "there": ADV, "now": ADV, "then": ADV, "when": ADV,
	"where": ADV, "why": ADV, "how": ADV, "again": ADV, "ever": ADV,
	"however": ADV, "almost": ADV, "soon": ADV, "quite": ADV, "rather": ADV,
	"perhaps": ADV, "well": ADV, "only": ADV, "much": ADV, "more": ADV,
	"most": ADV, "less": ADV, "least": ADV,

	// interjections
	"oh": INTJ, "yes": INTJ, "hello": INTJ, "wow": INTJ,
}

// verbTriggers are words after which an open-class word is read as a verb.
var verbTriggers = map[string]bool{
	"to": true, "will": true, "would": true, "shall": true, "should": true,
	"can": true, "could": true, "may": true, "might": true, "must": true,
	"do": true, "does": true, "did": true, "i": true, "we": true, "you": true,
	"they": true, "he": true, "she": true, "it": true, "not": true,
}

// defaultStopwords is a compact English stop-word list.
var defaultStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "almost", "also",
	"am", "among", "an", "and", "another", "any", "anyone", "anything", "are",
	"around", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "can", "could", "did", "do", "does",
	"doing", "done", "down", "during", "each", "either", "else", "even",
	"ever", "every", "few", "for", "from", "further", "get", "go", "had", "has",
	"have", "having", "he", "her", "here", "hers", "herself", "him",
	"himself", "his", "how", "however", "i", "if", "in", "into", "is", "it",
	"its", "itself", "just", "last", "least", "less", "made", "make", "many",
	"may", "me", "might", "more", "most", "much", "must", "my", "myself",
	"neither", "never", "no", "nor", "not", "nothing", "now", "of", "off",
	"often", "on", "once", "one", "only", "or", "other", "our", "ours",
	"ourselves", "out", "over", "own", "per", "put", "quite", "rather",
	"really", "said", "same", "say", "see", "seem", "several", "shall",
	"she", "should", "show", "since", "so", "some", "someone", "something",
	"still", "such", "take", "than", "that", "the", "their", "theirs", "them",
	"themselves", "then", "there", "these", "they", "this", "those",
	"though", "through", "thus", "to", "too", "toward", "under", "until",
	"up", "upon", "us", "used", "very", "via", "was", "we", "well", "were",
	"what", "whatever", "when", "where", "whether", "which", "while", "who",
	"whom", "whose", "why", "will", "with", "within", "without", "would",
	"yet", "you", "your", "yours", "yourself",
}

// abbreviations do not end a sentence when followed by a period.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true, "sr": true,
	"jr": true, "st": true, "vs": true, "etc": true, "inc": true, "ltd": true,
	"co": true, "corp": true, "jan": true, "feb": true, "mar": true,
	"apr": true, "jun": true, "jul": true, "aug": true, "sep": true,
	"sept": true, "oct": true, "nov": true, "dec": true, "no": true,
}

var irregularNouns = map[string]string{
	"men": "man", "women": "woman", "children": "child", "people": "person",
	"mice": "mouse", "feet": "foot", "teeth": "tooth", "geese": "goose",
	"lives": "life", "wives": "wife", "knives": "knife", "leaves": "leaf",
	"analyses": "analysis", "crises": "crisis", "criteria": "criterion",
	"phenomena": "phenomenon", "indices": "index",
}

var irregularVerbs = map[string]string{
	"went": "go", "gone": "go", "goes": "go", "made": "make", "said": "say",
	"took": "take", "taken": "take", "gave": "give", "given": "give",
	"got": "get", "gotten": "get", "ran": "run", "saw": "see", "seen": "see",
	"found": "find", "told": "tell", "thought": "think", "came": "come",
	"knew": "know", "known": "know", "began": "begin", "begun": "begin",
	"brought": "bring", "bought": "buy", "built": "build", "held": "hold",
	"kept": "keep", "left": "leave", "led": "lead", "lost": "lose",
	"met": "meet", "paid": "pay", "sent": "send", "sold": "sell",
	"spent": "spend", "stood": "stand", "won": "win", "wrote": "write",
	"written": "write", "rose": "rise", "fell": "fall", "grew": "grow",
	"chose": "choose", "drove": "drive", "felt": "feel", "heard": "hear",
	"meant": "mean", "understood": "understand", "became": "become",
}
