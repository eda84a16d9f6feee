package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/pkg/logger"
	"bjj_academy_backend/pkg/monitoring"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	followedCreatorBoost = 50
	difficultyMatchBoost = 15
	recencyMaxBoost      = 20
	recencyWindowDays    = 7
	popularityCap        = 10
	popularityViewsStep  = 100
	viewedPenalty        = 100

	// 总分相差不超过 scoreBandWidth 的条目在同一随机带内
	scoreBandWidth = 5

	topCategoryLimit   = 3
	categorySampleSize = 50
	viewedHistoryLimit = 100
)

var topCategoryBoosts = [topCategoryLimit]int{30, 20, 10}

// DrillCatalogReader 磨合动作目录读取
type DrillCatalogReader interface {
	FindAll() ([]model.Drill, error)
}

// LessonListReader 课时目录读取（打分不需要父课程）
type LessonListReader interface {
	FindAll() ([]model.Lesson, error)
}

// InteractionReader 互动历史读取，喂给偏好提取
type InteractionReader interface {
	FollowedCreatorIDs(userID uint) ([]uint, error)
	TopViewedCategories(userID uint, contentType model.ContentType, mostViewed, top int) ([]string, error)
	RecentViewedContentIDs(userID uint, contentType model.ContentType, limit int) ([]uint, error)
}

// ProfileReader 用户档案里的偏好难度
type ProfileReader interface {
	PreferredDifficulty(userID uint) (model.Difficulty, error)
}

// RecommendationService 对目录做个性化排序。自身无任何持久状态，
// 每次调用都从互动记录重新计算偏好。
type RecommendationService struct {
	Drills       DrillCatalogReader
	Lessons      LessonListReader
	Interactions InteractionReader
	Profiles     ProfileReader
}

func NewRecommendationService(drills DrillCatalogReader, lessons LessonListReader, interactions InteractionReader, profiles ProfileReader) *RecommendationService {
	return &RecommendationService{
		Drills:       drills,
		Lessons:      lessons,
		Interactions: interactions,
		Profiles:     profiles,
	}
}

// ruleProfile 控制每类目录启用哪些打分规则。课时目录只看关注的
// 创作者、新鲜度和已看惩罚，不会拿缺失的分类/难度数据硬凑分。
type ruleProfile struct {
	category   bool
	difficulty bool
	popularity bool
}

var (
	drillRules  = ruleProfile{category: true, difficulty: true, popularity: true}
	lessonRules = ruleProfile{}
)

// itemFacts 打分需要的条目属性，两个目录共用
type itemFacts struct {
	ID         uint
	CreatorID  uint
	Category   string
	Difficulty model.Difficulty
	CreatedAt  time.Time
	ViewCount  int
}

// scoreItem 六条规则相互独立、累加，不短路。
func scoreItem(f itemFacts, prefs *model.UserPreferences, now time.Time, rules ruleProfile) int {
	score := 0

	if prefs.FollowedCreatorIDs[f.CreatorID] {
		score += followedCreatorBoost
	}

	if rules.category && f.Category != "" {
		for i, cat := range prefs.TopCategories {
			if i >= len(topCategoryBoosts) {
				break
			}
			if f.Category == cat {
				score += topCategoryBoosts[i]
				break
			}
		}
	}

	if rules.difficulty && f.Difficulty != "" && f.Difficulty == prefs.PreferredDifficulty {
		score += difficultyMatchBoost
	}

	score += recencyBoost(f.CreatedAt, now)

	if rules.popularity {
		score += popularityBoost(f.ViewCount)
	}

	if prefs.ViewedContentIDs[f.ID] {
		score -= viewedPenalty
	}

	return score
}

// recencyBoost 七天内线性衰减：刚发布 +20，满七天恰好归零。
func recencyBoost(createdAt, now time.Time) int {
	days := now.Sub(createdAt).Hours() / 24
	if days < 0 || days >= recencyWindowDays {
		return 0
	}
	return int(math.Round(recencyMaxBoost * (1 - days/recencyWindowDays)))
}

func popularityBoost(views int) int {
	boost := views / popularityViewsStep
	if boost > popularityCap {
		return popularityCap
	}
	return boost
}

type scoredItem struct {
	idx   int // 原目录下标
	id    uint
	score int
}

// orderScored 先按 (分数 DESC, ID ASC) 确定性排序，再把相邻且与带首
// 相差不超过 scoreBandWidth 分的条目划入同一带，带内做无偏洗牌。
// 带的划分只由分数决定；随机只发生在带内。
func orderScored(items []scoredItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].id < items[j].id
	})

	start := 0
	for start < len(items) {
		anchor := items[start].score
		end := start + 1
		for end < len(items) && anchor-items[end].score <= scoreBandWidth {
			end++
		}
		band := items[start:end]
		rand.Shuffle(len(band), func(i, j int) {
			band[i], band[j] = band[j], band[i]
		})
		start = end
	}
}

// preferencesFor 固定扇出的并行偏好装配。每路读取失败只让对应信号
// 缺席并记日志，绝不让整次推荐失败。课时目录只需要其中两路。
func (s *RecommendationService) preferencesFor(userID uint, contentType model.ContentType) *model.UserPreferences {
	prefs := &model.UserPreferences{
		FollowedCreatorIDs: make(map[uint]bool),
		ViewedContentIDs:   make(map[uint]bool),
	}

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		ids, err := s.Interactions.FollowedCreatorIDs(userID)
		if err != nil {
			logger.Log.Warn("followed creators lookup failed", zap.Uint("userId", userID), zap.Error(err))
			return
		}
		for _, id := range ids {
			prefs.FollowedCreatorIDs[id] = true
		}
	}()
	go func() {
		defer wg.Done()
		ids, err := s.Interactions.RecentViewedContentIDs(userID, contentType, viewedHistoryLimit)
		if err != nil {
			logger.Log.Warn("viewed history lookup failed", zap.Uint("userId", userID), zap.Error(err))
			return
		}
		for _, id := range ids {
			prefs.ViewedContentIDs[id] = true
		}
	}()

	if contentType == model.ContentTypeDrill {
		wg.Add(2)
		go func() {
			defer wg.Done()
			categories, err := s.Interactions.TopViewedCategories(userID, contentType, categorySampleSize, topCategoryLimit)
			if err != nil {
				logger.Log.Warn("top categories lookup failed", zap.Uint("userId", userID), zap.Error(err))
				return
			}
			prefs.TopCategories = categories
		}()
		go func() {
			defer wg.Done()
			difficulty, err := s.Profiles.PreferredDifficulty(userID)
			if err != nil {
				logger.Log.Warn("preferred difficulty lookup failed", zap.Uint("userId", userID), zap.Error(err))
				return
			}
			prefs.PreferredDifficulty = difficulty
		}()
	}

	wg.Wait()
	return prefs
}

// GetUserPreferences 完整偏好包，单独暴露便于诊断和测试。
func (s *RecommendationService) GetUserPreferences(userID uint) *model.UserPreferences {
	return s.preferencesFor(userID, model.ContentTypeDrill)
}

// GetPersonalizedDrills 返回按个性化得分排序的磨合动作。游客或无任何
// 偏好信号时退化为均匀洗牌；目录读取失败返回空列表，永不抛错。
func (s *RecommendationService) GetPersonalizedDrills(userID uint, limit int) []model.Drill {
	drills, err := s.Drills.FindAll()
	if err != nil {
		logger.Log.Error("drill catalog fetch failed", zap.Error(err))
		return []model.Drill{}
	}

	if userID == 0 {
		monitoring.RecommendationRequests.WithLabelValues("drills", "fallback").Inc()
		shuffleDrills(drills)
		return truncateDrills(drills, limit)
	}

	prefs := s.preferencesFor(userID, model.ContentTypeDrill)
	if !prefs.HasSignals() {
		monitoring.RecommendationRequests.WithLabelValues("drills", "fallback").Inc()
		shuffleDrills(drills)
		return truncateDrills(drills, limit)
	}
	monitoring.RecommendationRequests.WithLabelValues("drills", "personalized").Inc()

	now := time.Now()
	scored := make([]scoredItem, len(drills))
	for i := range drills {
		scored[i] = scoredItem{
			idx: i,
			id:  drills[i].ID,
			score: scoreItem(itemFacts{
				ID:         drills[i].ID,
				CreatorID:  drills[i].CreatorID,
				Category:   drills[i].Category,
				Difficulty: drills[i].Difficulty,
				CreatedAt:  drills[i].CreatedAt,
				ViewCount:  drills[i].ViewCount,
			}, prefs, now, drillRules),
		}
	}
	orderScored(scored)

	out := make([]model.Drill, 0, len(scored))
	for _, it := range scored {
		out = append(out, drills[it.idx])
	}
	return truncateDrills(out, limit)
}

// GetPersonalizedLessons 课时目录的变体：只用关注创作者、新鲜度和
// 已看惩罚三条规则。
func (s *RecommendationService) GetPersonalizedLessons(userID uint, limit int) []model.Lesson {
	lessons, err := s.Lessons.FindAll()
	if err != nil {
		logger.Log.Error("lesson catalog fetch failed", zap.Error(err))
		return []model.Lesson{}
	}

	if userID == 0 {
		monitoring.RecommendationRequests.WithLabelValues("lessons", "fallback").Inc()
		shuffleLessons(lessons)
		return truncateLessons(lessons, limit)
	}

	prefs := s.preferencesFor(userID, model.ContentTypeLesson)
	if !prefs.HasSignals() {
		monitoring.RecommendationRequests.WithLabelValues("lessons", "fallback").Inc()
		shuffleLessons(lessons)
		return truncateLessons(lessons, limit)
	}
	monitoring.RecommendationRequests.WithLabelValues("lessons", "personalized").Inc()

	now := time.Now()
	scored := make([]scoredItem, len(lessons))
	for i := range lessons {
		scored[i] = scoredItem{
			idx: i,
			id:  lessons[i].ID,
			score: scoreItem(itemFacts{
				ID:        lessons[i].ID,
				CreatorID: lessons[i].CreatorID,
				CreatedAt: lessons[i].CreatedAt,
			}, prefs, now, lessonRules),
		}
	}
	orderScored(scored)

	out := make([]model.Lesson, 0, len(scored))
	for _, it := range scored {
		out = append(out, lessons[it.idx])
	}
	return truncateLessons(out, limit)
}

func shuffleDrills(drills []model.Drill) {
	rand.Shuffle(len(drills), func(i, j int) {
		drills[i], drills[j] = drills[j], drills[i]
	})
}

func shuffleLessons(lessons []model.Lesson) {
	rand.Shuffle(len(lessons), func(i, j int) {
		lessons[i], lessons[j] = lessons[j], lessons[i]
	})
}

func truncateDrills(drills []model.Drill, limit int) []model.Drill {
	if limit > 0 && len(drills) > limit {
		return drills[:limit]
	}
	return drills
}

func truncateLessons(lessons []model.Lesson, limit int) []model.Lesson {
	if limit > 0 && len(lessons) > limit {
		return lessons[:limit]
	}
	return lessons
}
