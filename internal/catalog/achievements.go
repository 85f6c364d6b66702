package catalog

// AchievementDef 成就定义。解锁条件的求值在 service 层，这里只是展示目录。
type AchievementDef struct {
	ID             string `json:"id"`
	TitleKey       string `json:"titleKey"`
	DescriptionKey string `json:"descriptionKey"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
	Condition      string `json:"condition"`
}

const (
	AchFirstStep      = "first_step"
	AchModuleMaster   = "module_master"
	AchStreak7        = "streak_7"
	AchStreak30       = "streak_30"
	AchHalfWay        = "half_way"
	AchFullStack      = "full_stack"
	AchSecurityExpert = "security_expert"
	AchDefiExplorer   = "defi_explorer"
	AchNftCreator     = "nft_creator"
	AchZkPioneer      = "zk_pioneer"
	AchCompletionist  = "completionist"
)

var Achievements = []AchievementDef{
	{ID: AchFirstStep, TitleKey: "achievements.firstStep.title", DescriptionKey: "achievements.firstStep.description", Icon: "🎯", Color: "from-green-400 to-emerald-500", Condition: "complete_first_topic"},
	{ID: AchModuleMaster, TitleKey: "achievements.moduleMaster.title", DescriptionKey: "achievements.moduleMaster.description", Icon: "📚", Color: "from-blue-400 to-indigo-500", Condition: "complete_first_module"},
	{ID: AchStreak7, TitleKey: "achievements.streak7.title", DescriptionKey: "achievements.streak7.description", Icon: "🔥", Color: "from-orange-400 to-red-500", Condition: "streak_7_days"},
	{ID: AchStreak30, TitleKey: "achievements.streak30.title", DescriptionKey: "achievements.streak30.description", Icon: "💪", Color: "from-purple-400 to-pink-500", Condition: "streak_30_days"},
	{ID: AchHalfWay, TitleKey: "achievements.halfWay.title", DescriptionKey: "achievements.halfWay.description", Icon: "🌟", Color: "from-yellow-400 to-orange-500", Condition: "complete_50_percent"},
	{ID: AchFullStack, TitleKey: "achievements.fullStack.title", DescriptionKey: "achievements.fullStack.description", Icon: "🚀", Color: "from-cyan-400 to-blue-500", Condition: "complete_first_project"},
	{ID: AchSecurityExpert, TitleKey: "achievements.securityExpert.title", DescriptionKey: "achievements.securityExpert.description", Icon: "🛡️", Color: "from-red-400 to-rose-500", Condition: "complete_security_module"},
	{ID: AchDefiExplorer, TitleKey: "achievements.defiExplorer.title", DescriptionKey: "achievements.defiExplorer.description", Icon: "💰", Color: "from-emerald-400 to-teal-500", Condition: "complete_defi_module"},
	{ID: AchNftCreator, TitleKey: "achievements.nftCreator.title", DescriptionKey: "achievements.nftCreator.description", Icon: "🎨", Color: "from-pink-400 to-purple-500", Condition: "complete_nft_module"},
	{ID: AchZkPioneer, TitleKey: "achievements.zkPioneer.title", DescriptionKey: "achievements.zkPioneer.description", Icon: "🔐", Color: "from-indigo-400 to-violet-500", Condition: "complete_zk_module"},
	{ID: AchCompletionist, TitleKey: "achievements.completionist.title", DescriptionKey: "achievements.completionist.description", Icon: "👑", Color: "from-amber-400 to-yellow-500", Condition: "complete_all_topics"},
}

func AchievementByID(id string) (*AchievementDef, bool) {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i], true
		}
	}
	return nil, false
}
