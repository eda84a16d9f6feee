package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/pkg/logger"
	"sync"

	"go.uber.org/zap"
)

// SubscriptionChecker 订阅状态读取
type SubscriptionChecker interface {
	HasActive(userID uint) (bool, error)
}

// PurchaseReader 单独购买记录读取
type PurchaseReader interface {
	PurchasedContentIDs(userID uint, contentType model.ContentType) ([]uint, error)
}

// LessonCatalogReader 课时目录读取（带父课程）
type LessonCatalogReader interface {
	FindAllWithCourse() ([]model.Lesson, error)
}

// AccessService 决定某个观看者此刻能否消费某条内容。
// 判定本身是纯函数；数据读取全部发生在判定之前。
type AccessService struct {
	Subscriptions SubscriptionChecker
	Purchases     PurchaseReader
	Lessons       LessonCatalogReader
}

func NewAccessService(subs SubscriptionChecker, purchases PurchaseReader, lessons LessonCatalogReader) *AccessService {
	return &AccessService{
		Subscriptions: subs,
		Purchases:     purchases,
		Lessons:       lessons,
	}
}

// CanAccessContent 访问门禁。规则顺序是策略契约，不可调换：
//  1. 今日免费 -> 放行（对游客同样生效）
//  2. 游客 -> 拒绝
//  3. 订阅用户 -> 放行
//  4. 单独购买过该内容 -> 放行
//  5. 拒绝
//
// 零值输入一律落向拒绝：nil 购买集合按空集处理，永不 panic。
func CanAccessContent(facts model.EntitlementFacts, access model.ContentAccess) bool {
	if access.IsDailyFree {
		return true
	}
	if facts.ViewerID == 0 {
		return false
	}
	if facts.IsSubscriber {
		return true
	}
	if facts.PurchasedContentIDs[access.ContentID] {
		return true
	}
	return false
}

// ResolveEntitlements 并行拉取订阅状态和购买集合。任一读取失败时，
// 该事实退化为拒绝侧的零值并记录日志，错误不向外传播。
func (s *AccessService) ResolveEntitlements(userID uint, contentType model.ContentType) model.EntitlementFacts {
	facts := model.EntitlementFacts{ViewerID: userID}
	if userID == 0 {
		return facts
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		active, err := s.Subscriptions.HasActive(userID)
		if err != nil {
			logger.Log.Warn("subscription lookup failed, treating viewer as non-subscriber",
				zap.Uint("userId", userID), zap.Error(err))
			return
		}
		facts.IsSubscriber = active
	}()

	go func() {
		defer wg.Done()
		ids, err := s.Purchases.PurchasedContentIDs(userID, contentType)
		if err != nil {
			logger.Log.Warn("purchase lookup failed, treating purchases as empty",
				zap.Uint("userId", userID), zap.Error(err))
			return
		}
		purchased := make(map[uint]bool, len(ids))
		for _, id := range ids {
			purchased[id] = true
		}
		facts.PurchasedContentIDs = purchased
	}()

	wg.Wait()
	return facts
}

// lessonAccessInputs 先解析父课程的订阅排除覆盖，再交给通用五条规则。
// 课时的购买粒度是课程，所以门禁里的内容ID是课程ID；被排除的课程里，
// 订阅位被替换为管理员等效位，订阅本身不再解锁。
func lessonAccessInputs(facts model.EntitlementFacts, lesson *model.Lesson) (model.EntitlementFacts, model.ContentAccess) {
	access := model.ContentAccess{
		ContentID:   lesson.CourseID,
		IsDailyFree: lesson.IsDailyFree,
	}
	if lesson.Course.SubscriptionExcluded {
		facts.IsSubscriber = facts.IsAdmin
	}
	return facts, access
}

// CanViewLesson 单条课时门禁，供播放入口使用。
func (s *AccessService) CanViewLesson(userID uint, isAdmin bool, lesson *model.Lesson) bool {
	facts := s.ResolveEntitlements(userID, model.ContentTypeCourse)
	facts.IsAdmin = isAdmin
	f, a := lessonAccessInputs(facts, lesson)
	return CanAccessContent(f, a)
}

// CanViewDrill 单条磨合动作门禁。
func (s *AccessService) CanViewDrill(userID uint, drill *model.Drill) bool {
	facts := s.ResolveEntitlements(userID, model.ContentTypeDrill)
	return CanAccessContent(facts, model.ContentAccess{
		ContentID:   drill.ID,
		IsDailyFree: drill.IsDailyFree,
	})
}

// AccessibleLessons 批量过滤：事实只解析一次，逐条应用门禁。
// 目录读取失败返回空列表，不抛错。
func (s *AccessService) AccessibleLessons(userID uint, isAdmin bool, limit int) []model.Lesson {
	lessons, err := s.Lessons.FindAllWithCourse()
	if err != nil {
		logger.Log.Error("lesson catalog fetch failed", zap.Error(err))
		return []model.Lesson{}
	}

	facts := s.ResolveEntitlements(userID, model.ContentTypeCourse)
	facts.IsAdmin = isAdmin

	accessible := make([]model.Lesson, 0, len(lessons))
	for i := range lessons {
		f, a := lessonAccessInputs(facts, &lessons[i])
		if !CanAccessContent(f, a) {
			continue
		}
		accessible = append(accessible, lessons[i])
		if limit > 0 && len(accessible) >= limit {
			break
		}
	}
	return accessible
}
