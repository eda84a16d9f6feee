package service

import (
	"bjj_academy_backend/internal/model"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriptions struct {
	active bool
	err    error
	calls  int
}

func (f *fakeSubscriptions) HasActive(userID uint) (bool, error) {
	f.calls++
	return f.active, f.err
}

type fakePurchases struct {
	ids   []uint
	err   error
	calls int
}

func (f *fakePurchases) PurchasedContentIDs(userID uint, contentType model.ContentType) ([]uint, error) {
	f.calls++
	return f.ids, f.err
}

type fakeLessonCatalog struct {
	lessons []model.Lesson
	err     error
}

func (f *fakeLessonCatalog) FindAllWithCourse() ([]model.Lesson, error) {
	return f.lessons, f.err
}

func TestCanAccessContentRulePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		facts  model.EntitlementFacts
		access model.ContentAccess
		want   bool
	}{
		{
			name:   "daily free admits anonymous viewer",
			facts:  model.EntitlementFacts{ViewerID: 0},
			access: model.ContentAccess{ContentID: 1, IsDailyFree: true},
			want:   true,
		},
		{
			name:   "daily free wins even without any entitlement",
			facts:  model.EntitlementFacts{ViewerID: 7},
			access: model.ContentAccess{ContentID: 1, IsDailyFree: true},
			want:   true,
		},
		{
			name:   "anonymous viewer denied on paid content",
			facts:  model.EntitlementFacts{ViewerID: 0, IsSubscriber: true},
			access: model.ContentAccess{ContentID: 1},
			want:   false,
		},
		{
			name:   "subscriber admitted without purchase",
			facts:  model.EntitlementFacts{ViewerID: 7, IsSubscriber: true},
			access: model.ContentAccess{ContentID: 1},
			want:   true,
		},
		{
			name: "non-subscriber admitted via purchase",
			facts: model.EntitlementFacts{
				ViewerID:            7,
				PurchasedContentIDs: map[uint]bool{1: true},
			},
			access: model.ContentAccess{ContentID: 1},
			want:   true,
		},
		{
			name: "purchase of a different item does not admit",
			facts: model.EntitlementFacts{
				ViewerID:            7,
				PurchasedContentIDs: map[uint]bool{2: true},
			},
			access: model.ContentAccess{ContentID: 1},
			want:   false,
		},
		{
			name:   "signed-in viewer with nothing is denied",
			facts:  model.EntitlementFacts{ViewerID: 7},
			access: model.ContentAccess{ContentID: 1},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessContent(tt.facts, tt.access))
		})
	}
}

func TestCanAccessContentZeroValuesFailClosed(t *testing.T) {
	// nil 购买集合按空集处理，不 panic
	assert.False(t, CanAccessContent(model.EntitlementFacts{}, model.ContentAccess{ContentID: 5}))
	assert.True(t, CanAccessContent(model.EntitlementFacts{}, model.ContentAccess{ContentID: 5, IsDailyFree: true}))
}

func TestResolveEntitlements(t *testing.T) {
	subs := &fakeSubscriptions{active: true}
	purchases := &fakePurchases{ids: []uint{3, 9}}
	svc := NewAccessService(subs, purchases, &fakeLessonCatalog{})

	facts := svc.ResolveEntitlements(7, model.ContentTypeDrill)

	assert.Equal(t, uint(7), facts.ViewerID)
	assert.True(t, facts.IsSubscriber)
	assert.Equal(t, map[uint]bool{3: true, 9: true}, facts.PurchasedContentIDs)
	assert.Equal(t, 1, subs.calls)
	assert.Equal(t, 1, purchases.calls)
}

func TestResolveEntitlementsAnonymousSkipsLookups(t *testing.T) {
	subs := &fakeSubscriptions{active: true}
	purchases := &fakePurchases{ids: []uint{3}}
	svc := NewAccessService(subs, purchases, &fakeLessonCatalog{})

	facts := svc.ResolveEntitlements(0, model.ContentTypeDrill)

	assert.Equal(t, uint(0), facts.ViewerID)
	assert.False(t, facts.IsSubscriber)
	assert.Empty(t, facts.PurchasedContentIDs)
	assert.Zero(t, subs.calls)
	assert.Zero(t, purchases.calls)
}

func TestResolveEntitlementsDegradesOnLookupErrors(t *testing.T) {
	subs := &fakeSubscriptions{err: errors.New("db down")}
	purchases := &fakePurchases{err: errors.New("db down")}
	svc := NewAccessService(subs, purchases, &fakeLessonCatalog{})

	facts := svc.ResolveEntitlements(7, model.ContentTypeDrill)

	// 读取失败时事实落向拒绝侧，判定仍可执行
	assert.False(t, facts.IsSubscriber)
	assert.Nil(t, facts.PurchasedContentIDs)
	assert.False(t, CanAccessContent(facts, model.ContentAccess{ContentID: 3}))
}

func lessonWith(id, courseID uint, excluded, dailyFree bool) model.Lesson {
	l := model.Lesson{
		CourseID:    courseID,
		IsDailyFree: dailyFree,
		Course:      model.Course{SubscriptionExcluded: excluded},
	}
	l.ID = id
	l.Course.ID = courseID
	return l
}

func TestLessonAccessExclusionOverride(t *testing.T) {
	excluded := lessonWith(1, 10, true, false)
	regular := lessonWith(2, 11, false, false)

	t.Run("subscription does not unlock excluded course", func(t *testing.T) {
		facts := model.EntitlementFacts{ViewerID: 7, IsSubscriber: true}
		f, a := lessonAccessInputs(facts, &excluded)
		assert.False(t, CanAccessContent(f, a))
	})

	t.Run("subscription unlocks regular course", func(t *testing.T) {
		facts := model.EntitlementFacts{ViewerID: 7, IsSubscriber: true}
		f, a := lessonAccessInputs(facts, &regular)
		assert.True(t, CanAccessContent(f, a))
	})

	t.Run("course purchase unlocks excluded course", func(t *testing.T) {
		facts := model.EntitlementFacts{
			ViewerID:            7,
			PurchasedContentIDs: map[uint]bool{10: true},
		}
		f, a := lessonAccessInputs(facts, &excluded)
		assert.True(t, CanAccessContent(f, a))
	})

	t.Run("admin bypasses exclusion", func(t *testing.T) {
		facts := model.EntitlementFacts{ViewerID: 7, IsSubscriber: true, IsAdmin: true}
		f, a := lessonAccessInputs(facts, &excluded)
		assert.True(t, CanAccessContent(f, a))
	})

	t.Run("daily free lesson open inside excluded course", func(t *testing.T) {
		free := lessonWith(3, 10, true, true)
		f, a := lessonAccessInputs(model.EntitlementFacts{}, &free)
		assert.True(t, CanAccessContent(f, a))
	})

	t.Run("purchase key is the course id not the lesson id", func(t *testing.T) {
		facts := model.EntitlementFacts{
			ViewerID:            7,
			PurchasedContentIDs: map[uint]bool{2: true}, // lesson id, not course id
		}
		f, a := lessonAccessInputs(facts, &regular)
		assert.False(t, CanAccessContent(f, a))
	})
}

func TestAccessibleLessons(t *testing.T) {
	catalog := &fakeLessonCatalog{lessons: []model.Lesson{
		lessonWith(1, 10, false, false), // 订阅可看
		lessonWith(2, 11, true, false),  // 排除课程，订阅不解锁
		lessonWith(3, 12, true, true),   // 今日免费
	}}
	subs := &fakeSubscriptions{active: true}
	svc := NewAccessService(subs, &fakePurchases{}, catalog)

	lessons := svc.AccessibleLessons(7, false, 0)

	require.Len(t, lessons, 2)
	assert.Equal(t, uint(1), lessons[0].ID)
	assert.Equal(t, uint(3), lessons[1].ID)
	// 批量过滤只解析一次事实
	assert.Equal(t, 1, subs.calls)
}

func TestAccessibleLessonsLimit(t *testing.T) {
	catalog := &fakeLessonCatalog{lessons: []model.Lesson{
		lessonWith(1, 10, false, true),
		lessonWith(2, 11, false, true),
		lessonWith(3, 12, false, true),
	}}
	svc := NewAccessService(&fakeSubscriptions{}, &fakePurchases{}, catalog)

	lessons := svc.AccessibleLessons(0, false, 2)
	assert.Len(t, lessons, 2)
}

func TestAccessibleLessonsEmptyOnCatalogError(t *testing.T) {
	catalog := &fakeLessonCatalog{err: errors.New("db down")}
	svc := NewAccessService(&fakeSubscriptions{}, &fakePurchases{}, catalog)

	lessons := svc.AccessibleLessons(7, false, 0)

	require.NotNil(t, lessons)
	assert.Empty(t, lessons)
}
