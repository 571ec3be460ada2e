package dialogue

// WMO weather interpretation codes, translated to Roman Urdu. The tables
// are closed; codes outside them fall back to the fixed unknown-code
// messages. The raw strings are a fixed translation table and must not be
// reworded.

const (
	unknownCodeText       = "Mosam ka code samajh nahi aaya."
	unknownPrecautionText = "Is mosam ke liye koi khaas ehtiyaat nahi batayi ja sakti."
)

var codeDescriptions = map[int]string{
	0:  "Aaj aasman bilkul saaf hai.",
	1:  "Halka baadal hai.",
	2:  "Thoda zyada baadal hai.",
	3:  "Poori tarah baadal chhaye hue hain.",
	45: "Halka kohra ya dhund hai.",
	48: "Gaari dhund hai.",
	51: "Halki halki boonden gir rahi hain.",
	53: "Darmiyani boonden gir rahi hain.",
	55: "Zyada boonden gir rahi hain.",
	56: "Halki baraf ke sath barish.",
	57: "Tez baraf ke sath barish.",
	61: "Halka baarish ho rahi hai.",
	63: "Darmiyani baarish ho rahi hai.",
	65: "Zor daar baarish ho rahi hai.",
	66: "Halki baraf wali baarish ho rahi hai.",
	67: "Zyada baraf wali baarish ho rahi hai.",
	71: "Halki baraf gir rahi hai.",
	73: "Darmiyani baraf gir rahi hai.",
	75: "Tez baraf gir rahi hai.",
	77: "Barf ke chhote tukde gir rahe hain.",
	80: "Thodi thodi baarish ho rahi hai.",
	81: "Darmiyani baarish ho rahi hai.",
	82: "Zyada tez baarish ho rahi hai.",
	85: "Baraf ke sath halki baarish ho rahi hai.",
	86: "Baraf ke sath tez baarish ho rahi hai.",
	95: "Aandhi tufan ke saath bijli chamak rahi hai.",
	96: "Halki bijli ke saath aandhi tufan.",
	99: "Tez bijli ke sath zyada aandhi tufan.",
}

var codePrecautions = map[int]string{
	0:  "Aasman saaf hai, lekin dhoop mein zyada dair na rahain. Sunscreen lagayein aur hydrated rahain.",
	1:  "Halka baadal hai. Ghar se nikalne se pehle dhup aur baadal dono ka khayal rakhein.",
	2:  "Thoda zyada baadal hai. Ghar se nikalte waqt chhata lein toh behtar hoga.",
	3:  "Poori tarah baadal chhaye hain. Baarish ka imkaan ho sakta hai, chhata le jana behtar hai.",
	45: "Halka kohra hai. Drive karte waqt fog lights ka istemal karein aur dheemi raftaar mein chalayen.",
	48: "Ghaani dhund hai. Nazr kam ho sakti hai, sirf zarurat padne par hi safar karein.",
	51: "Halki halki boonden gir rahi hain. Chhata ya waterproof jacket saath lein.",
	53: "Darmiyani barish ho rahi hai. Ghar se nikalte waqt proper raincoat aur chhata lein.",
	55: "Zyada barish ho rahi hai. Bheegne se bachne ke liye boots aur rainwear zaroori hai.",
	56: "Halki barish aur baraf dono. Sard mosam mein garam kapray aur waterproof cheezein pehn kar niklein.",
	57: "Tez barish ke sath baraf. Ghar se na nikalna behtar hai, roads slippery ho sakti hain.",
	61: "Halki baarish. Chhata zaroor lein aur bheegne se bachne ki koshish karein.",
	63: "Darmiyani baarish. Naazuk saman cover karein, aur pani jam hone se bachayein.",
	65: "Zor daar baarish ho rahi hai. Bahar na nikalna behtar hai, bijli girne ka imkaan bhi ho sakta hai.",
	66: "Halki baraf wali baarish. Sard hawa se bachne ke liye garam aur waterproof layering zaroori hai.",
	67: "Zyada baraf wali baarish. Slippery roads aur visibility ka masla ho sakta hai, ghar mein rahna behtar hai.",
	71: "Halki baraf gir rahi hai. Garam kapray aur gloves pehn kar niklein.",
	73: "Darmiyani baraf. Sard mosam se bachne ke liye layering aur boots pehnna zaroori hai.",
	75: "Tez baraf gir rahi hai. Roads block ya frozen ho sakti hain, zarurat ke ilawa bahar na niklein.",
	77: "Barf ke tukde gir rahe hain. Sar par kuch pehn kar niklein, aur barf se bachne ki koshish karein.",
	80: "Thodi thodi baarish ho rahi hai. Chhata saath lein, takay achanak bheeg na jayein.",
	81: "Darmiyani baarish. Safety ke liye non-slip shoes aur chhata zaroori hai.",
	82: "Zyada tez baarish. Flooding aur bijli ka khatra ho sakta hai, travel avoid karein.",
	85: "Baraf ke sath halki baarish. Slippery surface se bachne ke liye grip wale jootay zaroori hain.",
	86: "Baraf ke sath tez baarish. Emergency ke siwa bahar na niklein.",
	95: "Aandhi tufan aur bijli chamak rahi hai. Bijli ke poles aur darakhton se door rahain.",
	96: "Halki bijli ke sath tufan. Secure jagah par rahain aur electronics unplug kar dein.",
	99: "Tez bijli aur zyada aandhi tufan. Bahar jana khatarnaak ho sakta hai, emergency alerts ka khayal rakhein.",
}

// Describe returns the human-readable sky condition for a weather code.
// Total over all integers.
func Describe(code int) string {
	if desc, ok := codeDescriptions[code]; ok {
		return desc
	}

	return unknownCodeText
}

// PrecautionFor returns the precaution advice for a weather code.
// Total over all integers.
func PrecautionFor(code int) string {
	if p, ok := codePrecautions[code]; ok {
		return p
	}

	return unknownPrecautionText
}
