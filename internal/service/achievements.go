package service

import (
	"web3_journey_backend/internal/catalog"
)

// ProgressSnapshot 成就求值的输入快照，由调用方从进度镜像和统计行组装
type ProgressSnapshot struct {
	CompletedTopics   int
	CompletedModules  map[string]bool // 全部知识点 completed 的模块
	CompletedProjects map[string]bool
	CurrentStreak     int
	Unlocked          map[string]bool // 已解锁集合，命中的规则不再重复产出
}

// EvaluateAchievements 对全部规则逐条求值，返回新满足且未解锁的成就 id。
// 纯函数：不读库不写库，规则之间无顺序依赖也不互斥。
func EvaluateAchievements(snap ProgressSnapshot) []string {
	total := catalog.TotalTopics()

	conditions := []struct {
		id string
		ok bool
	}{
		{catalog.AchFirstStep, snap.CompletedTopics >= 1},
		{catalog.AchModuleMaster, len(snap.CompletedModules) >= 1},
		{catalog.AchStreak7, snap.CurrentStreak >= 7},
		{catalog.AchStreak30, snap.CurrentStreak >= 30},
		{catalog.AchHalfWay, total > 0 && float64(snap.CompletedTopics) >= float64(total)/2},
		{catalog.AchFullStack, len(snap.CompletedProjects) >= 1},
		{catalog.AchSecurityExpert, snap.CompletedModules["contract-security"]},
		{catalog.AchDefiExplorer, snap.CompletedModules["defi-development"]},
		{catalog.AchNftCreator, snap.CompletedModules["nft-development"]},
		{catalog.AchZkPioneer, snap.CompletedModules["zk-applications"]},
		{catalog.AchCompletionist, total > 0 && snap.CompletedTopics >= total},
	}

	var newly []string
	for _, c := range conditions {
		if c.ok && !snap.Unlocked[c.id] {
			newly = append(newly, c.id)
		}
	}
	return newly
}
