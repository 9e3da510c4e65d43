package analysis

// The irregular-forms tables are loaded into one map in the order below:
// verbs, then adverbs, then nouns, then adjectives. Later entries win, so
// an ambiguous form like "better" resolves to the adjective base "good".

// irregularVerbs maps inflected forms of English irregular verbs
// (including common prefixed compounds) to their base form.
var irregularVerbs = [][2]string{
	// be, have, do, go, run
	{"am", "be"}, {"are", "be"}, {"is", "be"}, {"was", "be"}, {"were", "be"},
	{"been", "be"}, {"being", "be"},
	{"have", "have"}, {"has", "have"}, {"had", "have"}, {"having", "have"},
	{"do", "do"}, {"does", "do"}, {"did", "do"}, {"doing", "do"}, {"done", "do"},
	{"go", "go"}, {"goes", "go"}, {"went", "go"}, {"going", "go"}, {"gone", "go"},
	{"undergo", "undergo"}, {"underwent", "undergo"}, {"undergone", "undergo"},
	{"forgo", "forgo"}, {"forwent", "forgo"}, {"forgone", "forgo"},
	{"ran", "run"}, {"running", "run"}, {"runs", "run"},
	{"overran", "overrun"}, {"overrun", "overrun"},
	{"reran", "rerun"}, {"rerun", "rerun"},

	// take, give, see, come
	{"took", "take"}, {"taken", "take"}, {"taking", "take"}, {"takes", "take"},
	{"undertook", "undertake"}, {"undertaken", "undertake"},
	{"mistook", "mistake"}, {"mistaken", "mistake"},
	{"overtook", "overtake"}, {"overtaken", "overtake"},
	{"retook", "retake"}, {"retaken", "retake"},
	{"gave", "give"}, {"given", "give"}, {"giving", "give"}, {"gives", "give"},
	{"forgave", "forgive"}, {"forgiven", "forgive"},
	{"saw", "see"}, {"seen", "see"}, {"seeing", "see"}, {"sees", "see"},
	{"foresee", "foresee"}, {"foresaw", "foresee"}, {"foreseen", "foresee"},
	{"oversee", "oversee"}, {"oversaw", "oversee"}, {"overseen", "oversee"},
	{"came", "come"}, {"coming", "come"}, {"comes", "come"},
	{"become", "become"}, {"became", "become"},
	{"overcome", "overcome"}, {"overcame", "overcome"},

	// know, make, say, tell, think
	{"knew", "know"}, {"known", "know"}, {"knowing", "know"}, {"knows", "know"},
	{"made", "make"}, {"making", "make"}, {"makes", "make"},
	{"remake", "remake"}, {"remade", "remake"},
	{"unmake", "unmake"}, {"unmade", "unmake"},
	{"said", "say"}, {"saying", "say"}, {"says", "say"},
	{"told", "tell"}, {"telling", "tell"}, {"tells", "tell"},
	{"retell", "retell"}, {"retold", "retell"},
	{"foretell", "foretell"}, {"foretold", "foretell"},
	{"thought", "think"}, {"thinking", "think"}, {"thinks", "think"},
	{"rethought", "rethink"},

	// find, get, leave, feel
	{"found", "find"}, {"finding", "find"}, {"finds", "find"},
	{"got", "get"}, {"gotten", "get"}, {"getting", "get"}, {"gets", "get"},
	{"forget", "forget"}, {"forgot", "forget"}, {"forgotten", "forget"},
	{"beget", "beget"}, {"begot", "beget"}, {"begotten", "beget"},
	{"left", "leave"}, {"leaving", "leave"}, {"leaves", "leave"},
	{"felt", "feel"}, {"feeling", "feel"}, {"feels", "feel"},

	// bring, buy, catch, teach, seek
	{"brought", "bring"}, {"bringing", "bring"}, {"brings", "bring"},
	{"bought", "buy"}, {"buying", "buy"}, {"buys", "buy"},
	{"caught", "catch"}, {"catching", "catch"}, {"catches", "catch"},
	{"taught", "teach"}, {"teaching", "teach"}, {"teaches", "teach"},
	{"sought", "seek"}, {"seeking", "seek"}, {"seeks", "seek"},

	// write, speak, break, choose
	{"wrote", "write"}, {"written", "write"}, {"writing", "write"}, {"writes", "write"},
	{"rewrite", "rewrite"}, {"rewrote", "rewrite"}, {"rewritten", "rewrite"},
	{"overwrite", "overwrite"}, {"overwrote", "overwrite"}, {"overwritten", "overwrite"},
	{"spoke", "speak"}, {"spoken", "speak"}, {"speaking", "speak"}, {"speaks", "speak"},
	{"broke", "break"}, {"broken", "break"}, {"breaking", "break"}, {"breaks", "break"},
	{"outbreak", "outbreak"}, {"outbroke", "outbreak"}, {"outbroken", "outbreak"},
	{"chose", "choose"}, {"chosen", "choose"}, {"choosing", "choose"}, {"chooses", "choose"},

	// drive, ride, rise, fly
	{"drove", "drive"}, {"driven", "drive"}, {"driving", "drive"}, {"drives", "drive"},
	{"overdrive", "overdrive"}, {"overdrove", "overdrive"}, {"overdriven", "overdrive"},
	{"rode", "ride"}, {"ridden", "ride"}, {"riding", "ride"}, {"rides", "ride"},
	{"override", "override"}, {"overrode", "override"}, {"overridden", "override"},
	{"rose", "rise"}, {"risen", "rise"}, {"rising", "rise"}, {"rises", "rise"},
	{"arise", "arise"}, {"arose", "arise"}, {"arisen", "arise"},
	{"flew", "fly"}, {"flown", "fly"}, {"flying", "fly"}, {"flies", "fly"},
	{"overfly", "overfly"}, {"overflew", "overfly"}, {"overflown", "overfly"},

	// grow, throw, draw
	{"grew", "grow"}, {"grown", "grow"}, {"growing", "grow"}, {"grows", "grow"},
	{"outgrow", "outgrow"}, {"outgrew", "outgrow"}, {"outgrown", "outgrow"},
	{"threw", "throw"}, {"thrown", "throw"}, {"throwing", "throw"}, {"throws", "throw"},
	{"overthrow", "overthrow"}, {"overthrew", "overthrow"}, {"overthrown", "overthrow"},
	{"drew", "draw"}, {"drawn", "draw"}, {"drawing", "draw"}, {"draws", "draw"},
	{"withdraw", "withdraw"}, {"withdrew", "withdraw"}, {"withdrawn", "withdraw"},

	// sing, swim, begin, drink, ring
	{"sang", "sing"}, {"sung", "sing"}, {"singing", "sing"}, {"sings", "sing"},
	{"swam", "swim"}, {"swum", "swim"}, {"swimming", "swim"}, {"swims", "swim"},
	{"began", "begin"}, {"begun", "begin"}, {"beginning", "begin"}, {"begins", "begin"},
	{"drank", "drink"}, {"drunk", "drink"}, {"drinking", "drink"}, {"drinks", "drink"},
	{"rang", "ring"}, {"rung", "ring"}, {"ringing", "ring"}, {"rings", "ring"},

	// sit, stand, hold, read, lead
	{"sat", "sit"}, {"sitting", "sit"}, {"sits", "sit"},
	{"babysit", "babysit"}, {"babysat", "babysit"},
	{"stood", "stand"}, {"standing", "stand"}, {"stands", "stand"},
	{"understand", "understand"}, {"understood", "understand"},
	{"withstand", "withstand"}, {"withstood", "withstand"},
	{"held", "hold"}, {"holding", "hold"}, {"holds", "hold"},
	{"behold", "behold"}, {"beheld", "behold"},
	{"withhold", "withhold"}, {"withheld", "withhold"},
	{"uphold", "uphold"}, {"upheld", "uphold"},
	{"read", "read"}, {"reading", "read"}, {"reads", "read"},
	{"led", "lead"}, {"leading", "lead"}, {"leads", "lead"},
	{"mislead", "mislead"}, {"misled", "mislead"},

	// meet, pay, send, spend
	{"met", "meet"}, {"meeting", "meet"}, {"meets", "meet"},
	{"paid", "pay"}, {"paying", "pay"}, {"pays", "pay"},
	{"repay", "repay"}, {"repaid", "repay"},
	{"overpay", "overpay"}, {"overpaid", "overpay"},
	{"sent", "send"}, {"sending", "send"}, {"sends", "send"},
	{"spent", "spend"}, {"spending", "spend"}, {"spends", "spend"},
	{"overspend", "overspend"}, {"overspent", "overspend"},

	// build, lose, keep, sleep, win, wear
	{"built", "build"}, {"building", "build"}, {"builds", "build"},
	{"rebuild", "rebuild"}, {"rebuilt", "rebuild"},
	{"lost", "lose"}, {"losing", "lose"}, {"loses", "lose"},
	{"kept", "keep"}, {"keeping", "keep"}, {"keeps", "keep"},
	{"slept", "sleep"}, {"sleeping", "sleep"}, {"sleeps", "sleep"},
	{"oversleep", "oversleep"}, {"overslept", "oversleep"},
	{"won", "win"}, {"winning", "win"}, {"wins", "win"},
	{"wore", "wear"}, {"worn", "wear"}, {"wearing", "wear"}, {"wears", "wear"},

	// beat, bite, bind, bleed, blow, bear
	{"beat", "beat"}, {"beaten", "beat"}, {"beating", "beat"}, {"beats", "beat"},
	{"bit", "bite"}, {"bitten", "bite"}, {"biting", "bite"}, {"bites", "bite"},
	{"bound", "bind"}, {"binding", "bind"}, {"binds", "bind"},
	{"unbind", "unbind"}, {"unbound", "unbind"},
	{"rebind", "rebind"}, {"rebound", "rebind"},
	{"bled", "bleed"}, {"bleeding", "bleed"}, {"bleeds", "bleed"},
	{"blew", "blow"}, {"blown", "blow"}, {"blowing", "blow"}, {"blows", "blow"},
	{"overblow", "overblow"}, {"overblew", "overblow"}, {"overblown", "overblow"},
	{"bore", "bear"}, {"born", "bear"}, {"borne", "bear"},
	{"bearing", "bear"}, {"bears", "bear"},

	// eat, fall, hide, shake, freeze
	{"ate", "eat"}, {"eaten", "eat"}, {"eating", "eat"}, {"eats", "eat"},
	{"overeat", "overeat"}, {"overate", "overeat"}, {"overeaten", "overeat"},
	{"fell", "fall"}, {"fallen", "fall"}, {"falling", "fall"}, {"falls", "fall"},
	{"befall", "befall"}, {"befell", "befall"}, {"befallen", "befall"},
	{"hid", "hide"}, {"hidden", "hide"}, {"hiding", "hide"}, {"hides", "hide"},
	{"shook", "shake"}, {"shaken", "shake"}, {"shaking", "shake"}, {"shakes", "shake"},
	{"froze", "freeze"}, {"frozen", "freeze"}, {"freezing", "freeze"}, {"freezes", "freeze"},

	// steal, tear, weave, forbid, forgive
	{"stole", "steal"}, {"stolen", "steal"}, {"stealing", "steal"}, {"steals", "steal"},
	{"tore", "tear"}, {"torn", "tear"}, {"tearing", "tear"}, {"tears", "tear"},
	{"wove", "weave"}, {"woven", "weave"}, {"weaving", "weave"}, {"weaves", "weave"},
	{"forbade", "forbid"}, {"forbidden", "forbid"}, {"forbidding", "forbid"}, {"forbids", "forbid"},
	{"forgiving", "forgive"}, {"forgives", "forgive"},

	// lie, lay, shine, shoot, show
	{"lay", "lie"}, {"lain", "lie"}, {"lying", "lie"}, {"lies", "lie"},
	{"laid", "lay"}, {"laying", "lay"}, {"lays", "lay"},
	{"shone", "shine"}, {"shined", "shine"}, {"shining", "shine"}, {"shines", "shine"},
	{"shot", "shoot"}, {"shooting", "shoot"}, {"shoots", "shoot"},
	{"overshoot", "overshoot"}, {"overshot", "overshoot"},
	{"showed", "show"}, {"shown", "show"}, {"showing", "show"}, {"shows", "show"},

	// shrink, shut, slay, slide
	{"shrank", "shrink"}, {"shrunk", "shrink"}, {"shrinking", "shrink"}, {"shrinks", "shrink"},
	{"shut", "shut"}, {"shutting", "shut"}, {"shuts", "shut"},
	{"slew", "slay"}, {"slain", "slay"}, {"slaying", "slay"}, {"slays", "slay"},
	{"slid", "slide"}, {"sliding", "slide"}, {"slides", "slide"},

	// sling, slit, smite, sow
	{"slung", "sling"}, {"slinging", "sling"}, {"slings", "sling"},
	{"slit", "slit"}, {"slitting", "slit"}, {"slits", "slit"},
	{"smote", "smite"}, {"smitten", "smite"}, {"smiting", "smite"}, {"smites", "smite"},
	{"sowed", "sow"}, {"sown", "sow"}, {"sowing", "sow"}, {"sows", "sow"},

	// spin, spit, split, spread
	{"spun", "spin"}, {"spinning", "spin"}, {"spins", "spin"},
	{"spat", "spit"}, {"spit", "spit"}, {"spitting", "spit"}, {"spits", "spit"},
	{"split", "split"}, {"splitting", "split"}, {"splits", "split"},
	{"spread", "spread"}, {"spreading", "spread"}, {"spreads", "spread"},

	// spring, stick, sting, stink
	{"sprang", "spring"}, {"sprung", "spring"}, {"springing", "spring"}, {"springs", "spring"},
	{"stuck", "stick"}, {"sticking", "stick"}, {"sticks", "stick"},
	{"stung", "sting"}, {"stinging", "sting"}, {"stings", "sting"},
	{"stank", "stink"}, {"stunk", "stink"}, {"stinking", "stink"}, {"stinks", "stink"},

	// stride, strike, string, strive
	{"strode", "stride"}, {"stridden", "stride"}, {"striding", "stride"}, {"strides", "stride"},
	{"struck", "strike"}, {"stricken", "strike"}, {"striking", "strike"}, {"strikes", "strike"},
	{"strung", "string"}, {"stringing", "string"}, {"strings", "string"},
	{"strove", "strive"}, {"striven", "strive"}, {"striving", "strive"}, {"strives", "strive"},

	// swear, sweep, swell, swing
	{"swore", "swear"}, {"sworn", "swear"}, {"swearing", "swear"}, {"swears", "swear"},
	{"swept", "sweep"}, {"sweeping", "sweep"}, {"sweeps", "sweep"},
	{"swelled", "swell"}, {"swollen", "swell"}, {"swelling", "swell"}, {"swells", "swell"},
	{"swung", "swing"}, {"swinging", "swing"}, {"swings", "swing"},

	// tread, wake, wind, wring
	{"trod", "tread"}, {"trodden", "tread"}, {"treading", "tread"}, {"treads", "tread"},
	{"woke", "wake"}, {"woken", "wake"}, {"waking", "wake"}, {"wakes", "wake"},
	{"awake", "awake"}, {"awoke", "awake"}, {"awoken", "awake"},
	{"wound", "wind"}, {"winding", "wind"}, {"winds", "wind"},
	{"unwind", "unwind"}, {"unwound", "unwind"},
	{"rewind", "rewind"}, {"rewound", "rewind"},
	{"wrung", "wring"}, {"wringing", "wring"}, {"wrings", "wring"},

	// invariant and -t/-ed verbs
	{"lit", "light"}, {"lighted", "light"}, {"lighting", "light"}, {"lights", "light"},
	{"quit", "quit"}, {"quitting", "quit"}, {"quits", "quit"},
	{"set", "set"}, {"setting", "set"}, {"sets", "set"},
	{"upset", "upset"}, {"reset", "reset"}, {"offset", "offset"},
	{"cut", "cut"}, {"cutting", "cut"}, {"cuts", "cut"}, {"undercut", "undercut"},
	{"hit", "hit"}, {"hitting", "hit"}, {"hits", "hit"},
	{"put", "put"}, {"putting", "put"}, {"puts", "put"},
	{"input", "input"}, {"output", "output"},
	{"let", "let"}, {"letting", "let"}, {"lets", "let"},
	{"cost", "cost"}, {"costing", "cost"}, {"costs", "cost"},
	{"cast", "cast"}, {"casting", "cast"}, {"casts", "cast"},
	{"broadcast", "broadcast"}, {"forecast", "forecast"}, {"overcast", "overcast"},
	{"burst", "burst"}, {"bursting", "burst"}, {"bursts", "burst"},
	{"hurt", "hurt"}, {"hurting", "hurt"}, {"hurts", "hurt"},
	{"bet", "bet"}, {"betting", "bet"}, {"bets", "bet"},
	{"bent", "bend"}, {"bending", "bend"}, {"bends", "bend"},
	{"lent", "lend"}, {"lending", "lend"}, {"lends", "lend"},
	{"fed", "feed"}, {"feeding", "feed"}, {"feeds", "feed"},
	{"overfeed", "overfeed"}, {"overfed", "overfeed"},
	{"bred", "breed"}, {"breeding", "breed"}, {"breeds", "breed"},
	{"crossbreed", "crossbreed"}, {"crossbred", "crossbreed"},
	{"sped", "speed"}, {"speeding", "speed"}, {"speeds", "speed"},
	{"fled", "flee"}, {"fleeing", "flee"}, {"flees", "flee"},
	{"dealt", "deal"}, {"dealing", "deal"}, {"deals", "deal"},
	{"meant", "mean"}, {"meaning", "mean"}, {"means", "mean"},
	{"leant", "lean"}, {"leaned", "lean"}, {"leaning", "lean"}, {"leans", "lean"},
	{"leapt", "leap"}, {"leaped", "leap"}, {"leaping", "leap"}, {"leaps", "leap"},
	{"overleap", "overleap"}, {"overleapt", "overleap"},
	{"learnt", "learn"}, {"learned", "learn"}, {"learning", "learn"}, {"learns", "learn"},
	{"burnt", "burn"}, {"burned", "burn"}, {"burning", "burn"}, {"burns", "burn"},
	{"smelt", "smell"}, {"smelled", "smell"}, {"smelling", "smell"}, {"smells", "smell"},
	{"spelt", "spell"}, {"spelled", "spell"}, {"spelling", "spell"}, {"spells", "spell"},
	{"misspell", "misspell"}, {"misspelt", "misspell"},
	{"spilt", "spill"}, {"spilled", "spill"}, {"spilling", "spill"}, {"spills", "spill"},
	{"spoilt", "spoil"}, {"spoiled", "spoil"}, {"spoiling", "spoil"}, {"spoils", "spoil"},
	{"dreamt", "dream"}, {"dreamed", "dream"}, {"dreaming", "dream"}, {"dreams", "dream"},
	{"dwelt", "dwell"}, {"dwelled", "dwell"}, {"dwelling", "dwell"}, {"dwells", "dwell"},
	{"hung", "hang"}, {"hanged", "hang"}, {"hanging", "hang"}, {"hangs", "hang"},
	{"overhang", "overhang"}, {"overhung", "overhang"},
	{"dug", "dig"}, {"digging", "dig"}, {"digs", "dig"},
	{"clung", "cling"}, {"clinging", "cling"}, {"clings", "cling"},
	{"flung", "fling"}, {"flinging", "fling"}, {"flings", "fling"},
}

// irregularAdverbs maps comparative/superlative adverb forms to their base.
var irregularAdverbs = [][2]string{
	{"worse", "badly"}, {"worst", "badly"},
	{"better", "well"}, {"best", "well"},
	{"more", "much"}, {"most", "much"},
	{"less", "little"}, {"least", "little"},
	{"farther", "far"}, {"farthest", "far"},
	{"further", "far"}, {"furthest", "far"},
}

// irregularNouns maps irregular plurals (Germanic, Latin, Greek) to their
// singular.
var irregularNouns = [][2]string{
	{"children", "child"},
	{"men", "man"},
	{"women", "woman"},
	{"feet", "foot"},
	{"teeth", "tooth"},
	{"mice", "mouse"},
	{"geese", "goose"},
	{"people", "person"},
	{"lice", "louse"},
	{"oxen", "ox"},
	{"deer", "deer"},
	{"sheep", "sheep"},
	{"fish", "fish"},
	{"moose", "moose"},
	{"series", "series"},
	{"species", "species"},
	{"aircraft", "aircraft"},
	{"spacecraft", "spacecraft"},
	{"salmon", "salmon"},
	{"trout", "trout"},
	{"swine", "swine"},
	{"bison", "bison"},
	{"buffalo", "buffalo"},
	{"shrimp", "shrimp"},
	{"cod", "cod"},
	{"squid", "squid"},
	{"cacti", "cactus"},
	{"cactuses", "cactus"},
	{"fungi", "fungus"},
	{"funguses", "fungus"},
	{"nuclei", "nucleus"},
	{"syllabi", "syllabus"},
	{"syllabuses", "syllabus"},
	{"alumni", "alumnus"},
	{"foci", "focus"},
	{"focuses", "focus"},
	{"radii", "radius"},
	{"stimuli", "stimulus"},
	{"termini", "terminus"},
	{"terminuses", "terminus"},
	{"analyses", "analysis"},
	{"axes", "axis"},
	{"bases", "basis"},
	{"crises", "crisis"},
	{"diagnoses", "diagnosis"},
	{"ellipses", "ellipsis"},
	{"hypotheses", "hypothesis"},
	{"oases", "oasis"},
	{"parentheses", "parenthesis"},
	{"synopses", "synopsis"},
	{"syntheses", "synthesis"},
	{"theses", "thesis"},
	{"phenomena", "phenomenon"},
	{"criteria", "criterion"},
	{"data", "datum"},
	{"errata", "erratum"},
	{"strata", "stratum"},
	{"addenda", "addendum"},
	{"bacteria", "bacterium"},
	{"curricula", "curriculum"},
	{"memoranda", "memorandum"},
	{"media", "medium"},
	{"millennia", "millennium"},
	{"ova", "ovum"},
	{"spectra", "spectrum"},
	{"symposia", "symposium"},
	{"algae", "alga"},
	{"antennae", "antenna"},
	{"antennas", "antenna"},
	{"formulae", "formula"},
	{"formulas", "formula"},
	{"larvae", "larva"},
	{"nebulae", "nebula"},
	{"vertebrae", "vertebra"},
	{"vitae", "vita"},
	{"appendices", "appendix"},
	{"appendixes", "appendix"},
	{"codices", "codex"},
	{"indices", "index"},
	{"indexes", "index"},
	{"matrices", "matrix"},
	{"matrixes", "matrix"},
	{"vertices", "vertex"},
	{"vortices", "vortex"},
	{"vortexes", "vortex"},
	{"apices", "apex"},
	{"apexes", "apex"},
	{"cortices", "cortex"},
	{"helices", "helix"},
	{"loci", "locus"},
	{"octopi", "octopus"},
	{"octopuses", "octopus"},
	{"platypuses", "platypus"},
	{"platypi", "platypus"},
	{"genii", "genius"},
	{"geniuses", "genius"},
	{"styli", "stylus"},
	{"styluses", "stylus"},
	{"abscissae", "abscissa"},
	{"amoebae", "amoeba"},
	{"amoebas", "amoeba"},
	{"antitheses", "antithesis"},
	{"aphides", "aphis"},
	{"automata", "automaton"},
	{"automatons", "automaton"},
	{"cervices", "cervix"},
	{"crania", "cranium"},
	{"equilibria", "equilibrium"},
	{"ganglia", "ganglion"},
	{"genera", "genus"},
	{"gymnasia", "gymnasium"},
	{"penumbrae", "penumbra"},
	{"phyla", "phylum"},
	{"quanta", "quantum"},
	{"rostra", "rostrum"},
	{"septa", "septum"},
	{"solaria", "solarium"},
	{"stamina", "stamen"},
	{"thoraces", "thorax"},
	{"ultimata", "ultimatum"},
	{"umbrae", "umbra"},
	{"uteri", "uterus"},
	{"viscera", "viscus"},
	{"aquaria", "aquarium"},
	{"aquariums", "aquarium"},
	{"consortia", "consortium"},
	{"craniums", "cranium"},
	{"emporium", "emporium"},
	{"emporia", "emporium"},
	{"equilibriums", "equilibrium"},
	{"ganglions", "ganglion"},
	{"gymnasiums", "gymnasium"},
	{"honoraria", "honorarium"},
	{"honorariums", "honorarium"},
	{"mausolea", "mausoleum"},
	{"mausoleums", "mausoleum"},
	{"moratorium", "moratorium"},
	{"moratoria", "moratorium"},
	{"planetaria", "planetarium"},
	{"planetariums", "planetarium"},
	{"podiums", "podium"},
	{"podia", "podium"},
	{"referenda", "referendum"},
	{"referendums", "referendum"},
	{"rostrums", "rostrum"},
	{"sanatoriums", "sanatorium"},
	{"sanatoria", "sanatorium"},
	{"stadiums", "stadium"},
	{"stadia", "stadium"},
	{"symposiums", "symposium"},
	{"terrariums", "terrarium"},
	{"terraria", "terrarium"},
	{"ultimatums", "ultimatum"},
	{"vivariums", "vivarium"},
	{"vivaria", "vivarium"},

	{"atria", "atrium"},
	{"bacilli", "bacillus"},
	{"bronchi", "bronchus"},
	{"cilia", "cilium"},
	{"flagella", "flagellum"},
	{"mitochondria", "mitochondrion"},
	{"mycelia", "mycelium"},
	{"protozoa", "protozoan"},
	{"spermatozoa", "spermatozoon"},
	{"venae", "vena"},

	{"abscissas", "abscissa"},
	{"asymptotes", "asymptote"},
	{"binomials", "binomial"},
	{"corollaries", "corollary"},
	{"maxima", "maximum"},
	{"maximums", "maximum"},
	{"minima", "minimum"},
	{"minimums", "minimum"},
	{"optima", "optimum"},
	{"optimums", "optimum"},
	{"polyhedra", "polyhedron"},
	{"polyhedrons", "polyhedron"},
	{"radices", "radix"},
	{"simplices", "simplex"},

	{"corpora", "corpus"},
	{"lemmas", "lemma"},
	{"lemmata", "lemma"},
	{"lexica", "lexicon"},
	{"lexicons", "lexicon"},
	{"schemata", "schema"},
	{"schemas", "schema"},

	{"pupae", "pupa"},
	{"chrysalises", "chrysalis"},
	{"chrysalides", "chrysalis"},

	{"addendums", "addendum"},
	{"agenda", "agendum"},
	{"alumnae", "alumna"},
	{"candelabra", "candelabrum"},
	{"corrigenda", "corrigendum"},
	{"desiderata", "desideratum"},
	{"dicta", "dictum"},
	{"effluvia", "effluvium"},
	{"insignia", "insigne"},
	{"millenniums", "millennium"},
	{"spectrums", "spectrum"},
	{"vaccinia", "vaccinium"},
}

// irregularAdjectives maps comparative/superlative adjective forms to
// their base. Loaded last, so shared forms resolve to the adjective base.
var irregularAdjectives = [][2]string{
	{"better", "good"}, {"best", "good"},
	{"worse", "bad"}, {"worst", "bad"},
	{"more", "much"}, {"most", "much"},
	{"less", "little"}, {"least", "little"},
	{"farther", "far"}, {"farthest", "far"},
	{"further", "far"}, {"furthest", "far"},
	{"older", "old"}, {"oldest", "old"},
	{"elder", "old"}, {"eldest", "old"},
}
