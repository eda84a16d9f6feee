package service

import (
	"bjj_academy_backend/internal/model"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDrillCatalog struct {
	drills []model.Drill
	err    error
}

func (f *fakeDrillCatalog) FindAll() ([]model.Drill, error) {
	return f.drills, f.err
}

type fakeLessonList struct {
	lessons []model.Lesson
	err     error
}

func (f *fakeLessonList) FindAll() ([]model.Lesson, error) {
	return f.lessons, f.err
}

type fakeInteractions struct {
	followed    []uint
	followedErr error

	categories    []string
	categoriesErr error

	viewed    []uint
	viewedErr error
}

func (f *fakeInteractions) FollowedCreatorIDs(userID uint) ([]uint, error) {
	return f.followed, f.followedErr
}

func (f *fakeInteractions) TopViewedCategories(userID uint, contentType model.ContentType, mostViewed, top int) ([]string, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeInteractions) RecentViewedContentIDs(userID uint, contentType model.ContentType, limit int) ([]uint, error) {
	return f.viewed, f.viewedErr
}

type fakeProfiles struct {
	difficulty model.Difficulty
	err        error
}

func (f *fakeProfiles) PreferredDifficulty(userID uint) (model.Difficulty, error) {
	return f.difficulty, f.err
}

func newRecSvc(drills *fakeDrillCatalog, lessons *fakeLessonList, inter *fakeInteractions, prof *fakeProfiles) *RecommendationService {
	if drills == nil {
		drills = &fakeDrillCatalog{}
	}
	if lessons == nil {
		lessons = &fakeLessonList{}
	}
	if inter == nil {
		inter = &fakeInteractions{}
	}
	if prof == nil {
		prof = &fakeProfiles{}
	}
	return NewRecommendationService(drills, lessons, inter, prof)
}

func drillWith(id, creatorID uint, category string, difficulty model.Difficulty, ageDays float64, views int) model.Drill {
	d := model.Drill{
		CreatorID:  creatorID,
		Category:   category,
		Difficulty: difficulty,
		ViewCount:  views,
	}
	d.ID = id
	d.CreatedAt = time.Now().Add(-time.Duration(ageDays * 24 * float64(time.Hour)))
	return d
}

func TestScoreItemAdditiveRules(t *testing.T) {
	now := time.Now()
	prefs := &model.UserPreferences{
		FollowedCreatorIDs:  map[uint]bool{9: true},
		TopCategories:       []string{"guard", "passing", "takedowns"},
		PreferredDifficulty: model.Intermediate,
		ViewedContentIDs:    map[uint]bool{},
	}

	tests := []struct {
		name string
		item itemFacts
		want int
	}{
		{
			name: "all boosts stack",
			// 50 关注 + 30 首选分类 + 15 难度 + 20 新鲜 + 10 热度
			item: itemFacts{ID: 1, CreatorID: 9, Category: "guard",
				Difficulty: model.Intermediate, CreatedAt: now, ViewCount: 5000},
			want: 125,
		},
		{
			name: "second category boost",
			item: itemFacts{ID: 2, Category: "passing", CreatedAt: now.AddDate(0, 0, -30)},
			want: 20,
		},
		{
			name: "third category boost",
			item: itemFacts{ID: 3, Category: "takedowns", CreatedAt: now.AddDate(0, 0, -30)},
			want: 10,
		},
		{
			name: "unranked category no boost",
			item: itemFacts{ID: 4, Category: "leglocks", CreatedAt: now.AddDate(0, 0, -30)},
			want: 0,
		},
		{
			name: "difficulty mismatch no boost",
			item: itemFacts{ID: 5, Difficulty: model.Advanced, CreatedAt: now.AddDate(0, 0, -30)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreItem(tt.item, prefs, now, drillRules))
		})
	}
}

func TestScoreItemIsIdempotent(t *testing.T) {
	now := time.Now()
	prefs := &model.UserPreferences{
		FollowedCreatorIDs: map[uint]bool{9: true},
		TopCategories:      []string{"guard"},
		ViewedContentIDs:   map[uint]bool{1: true},
	}
	item := itemFacts{ID: 1, CreatorID: 9, Category: "guard", CreatedAt: now, ViewCount: 450}

	first := scoreItem(item, prefs, now, drillRules)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scoreItem(item, prefs, now, drillRules))
	}
}

func TestRecencyBoost(t *testing.T) {
	now := time.Now()
	hours := func(h float64) time.Time {
		return now.Add(-time.Duration(h * float64(time.Hour)))
	}

	assert.Equal(t, 20, recencyBoost(now, now))
	assert.Equal(t, 10, recencyBoost(hours(3.5*24), now)) // 半窗口
	assert.Equal(t, 0, recencyBoost(hours(7*24), now))    // 窗口边界恰好归零
	assert.Equal(t, 0, recencyBoost(hours(30*24), now))
	assert.Equal(t, 3, recencyBoost(hours(6*24), now)) // round(20*(1-6/7))
}

func TestPopularityBoost(t *testing.T) {
	assert.Equal(t, 0, popularityBoost(0))
	assert.Equal(t, 0, popularityBoost(99))
	assert.Equal(t, 1, popularityBoost(100))
	assert.Equal(t, 4, popularityBoost(450))
	assert.Equal(t, 10, popularityBoost(1000))
	assert.Equal(t, 10, popularityBoost(999999)) // 封顶
}

func TestViewedPenaltyDemotesButKeeps(t *testing.T) {
	inter := &fakeInteractions{
		followed: []uint{9},
		viewed:   []uint{1},
	}
	catalog := &fakeDrillCatalog{drills: []model.Drill{
		drillWith(1, 9, "", "", 30, 0), // 关注+已看: 50-100 = -50
		drillWith(2, 9, "", "", 30, 0), // 关注: 50
	}}
	svc := newRecSvc(catalog, nil, inter, nil)

	out := svc.GetPersonalizedDrills(7, 0)

	// 已看条目被压到后面但不会被剔除
	require.Len(t, out, 2)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(1), out[1].ID)
}

func TestPersonalizedDrillsOrdering(t *testing.T) {
	inter := &fakeInteractions{
		followed:   []uint{9},
		categories: []string{"guard"},
		viewed:     []uint{3},
	}
	prof := &fakeProfiles{difficulty: model.Intermediate}
	catalog := &fakeDrillCatalog{drills: []model.Drill{
		// A: 50+30+15+20 = 115
		drillWith(1, 9, "guard", model.Intermediate, 0, 0),
		// B: 30 - 带宽 5 之外，永远排在 A 后
		drillWith(2, 5, "guard", model.Advanced, 30, 0),
		// C: -100 已看
		drillWith(3, 5, "", model.Advanced, 30, 0),
	}}
	svc := newRecSvc(catalog, nil, inter, prof)

	for i := 0; i < 20; i++ {
		out := svc.GetPersonalizedDrills(7, 0)
		require.Len(t, out, 3)
		assert.Equal(t, uint(1), out[0].ID)
		assert.Equal(t, uint(2), out[1].ID)
		assert.Equal(t, uint(3), out[2].ID)
	}
}

func TestBandShuffleStaysWithinBand(t *testing.T) {
	// 三条高分同带，一条低分独带。带内顺序可变，带间顺序不可变。
	items := func() []scoredItem {
		return []scoredItem{
			{idx: 0, id: 1, score: 100},
			{idx: 1, id: 2, score: 98},
			{idx: 2, id: 3, score: 96},
			{idx: 3, id: 4, score: 10},
		}
	}

	seenFirst := map[uint]bool{}
	for i := 0; i < 200; i++ {
		s := items()
		orderScored(s)
		require.Equal(t, uint(4), s[3].id, "low scorer must stay last")
		top := map[uint]bool{s[0].id: true, s[1].id: true, s[2].id: true}
		assert.Equal(t, map[uint]bool{1: true, 2: true, 3: true}, top)
		seenFirst[s[0].id] = true
	}
	// 200 次洗牌后带内每个成员都应出现过在首位
	assert.Len(t, seenFirst, 3)
}

func TestBandAnchoring(t *testing.T) {
	// 100,96,93: 93 与带首 100 相差 7 > 5，属于第二带，
	// 即便它与相邻的 96 只差 3。
	for i := 0; i < 100; i++ {
		s := []scoredItem{
			{idx: 0, id: 1, score: 100},
			{idx: 1, id: 2, score: 96},
			{idx: 2, id: 3, score: 93},
		}
		orderScored(s)
		assert.Equal(t, uint(3), s[2].id)
	}
}

func TestAnonymousGetsShuffledCatalog(t *testing.T) {
	catalog := &fakeDrillCatalog{drills: []model.Drill{
		drillWith(1, 0, "", "", 30, 0),
		drillWith(2, 0, "", "", 30, 0),
		drillWith(3, 0, "", "", 30, 0),
		drillWith(4, 0, "", "", 30, 0),
	}}
	inter := &fakeInteractions{followedErr: errors.New("must not be called")}
	svc := newRecSvc(catalog, nil, inter, nil)

	orders := map[[4]uint]bool{}
	for i := 0; i < 500; i++ {
		out := svc.GetPersonalizedDrills(0, 0)
		require.Len(t, out, 4)
		var key [4]uint
		for j, d := range out {
			key[j] = d.ID
		}
		orders[key] = true
	}
	// 均匀洗牌在 500 次里必然出现多种排列
	assert.Greater(t, len(orders), 1)
}

func TestNoSignalsFallsBackToShuffle(t *testing.T) {
	catalog := &fakeDrillCatalog{drills: []model.Drill{
		drillWith(1, 0, "", "", 30, 0),
		drillWith(2, 0, "", "", 30, 0),
		drillWith(3, 0, "", "", 30, 0),
	}}
	// 只有浏览历史，不构成个性化信号
	inter := &fakeInteractions{viewed: []uint{1, 2}}
	svc := newRecSvc(catalog, nil, inter, nil)

	seen := map[uint]bool{}
	for i := 0; i < 200; i++ {
		out := svc.GetPersonalizedDrills(7, 0)
		require.Len(t, out, 3)
		seen[out[0].ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestPartialSignalFailureDegrades(t *testing.T) {
	inter := &fakeInteractions{
		followed:      []uint{9},
		categoriesErr: errors.New("db down"),
		viewedErr:     errors.New("db down"),
	}
	prof := &fakeProfiles{err: errors.New("db down")}
	catalog := &fakeDrillCatalog{drills: []model.Drill{
		drillWith(1, 9, "guard", model.Intermediate, 30, 0), // 50 关注
		drillWith(2, 5, "guard", model.Intermediate, 30, 0), // 0
	}}
	svc := newRecSvc(catalog, nil, inter, prof)

	// 失败的信号退化为缺席，剩余信号继续打分
	out := svc.GetPersonalizedDrills(7, 0)
	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestEmptyOnCatalogError(t *testing.T) {
	svc := newRecSvc(&fakeDrillCatalog{err: errors.New("db down")}, nil, nil, nil)
	out := svc.GetPersonalizedDrills(7, 0)
	require.NotNil(t, out)
	assert.Empty(t, out)

	svcL := newRecSvc(nil, &fakeLessonList{err: errors.New("db down")}, nil, nil)
	outL := svcL.GetPersonalizedLessons(7, 0)
	require.NotNil(t, outL)
	assert.Empty(t, outL)
}

func TestLimitTruncation(t *testing.T) {
	catalog := &fakeDrillCatalog{drills: []model.Drill{
		drillWith(1, 0, "", "", 30, 0),
		drillWith(2, 0, "", "", 30, 0),
		drillWith(3, 0, "", "", 30, 0),
	}}
	svc := newRecSvc(catalog, nil, &fakeInteractions{followed: []uint{9}}, nil)

	assert.Len(t, svc.GetPersonalizedDrills(7, 2), 2)
	assert.Len(t, svc.GetPersonalizedDrills(7, 0), 3)
	assert.Len(t, svc.GetPersonalizedDrills(7, 10), 3)
}

func lessonItem(id, creatorID uint, ageDays float64) model.Lesson {
	l := model.Lesson{CreatorID: creatorID}
	l.ID = id
	l.CreatedAt = time.Now().Add(-time.Duration(ageDays * 24 * float64(time.Hour)))
	return l
}

func TestPersonalizedLessonsSkipDrillOnlyRules(t *testing.T) {
	inter := &fakeInteractions{followed: []uint{9}}
	// 难度与分类读取在课时模式下不应被调用
	prof := &fakeProfiles{err: errors.New("must not be called")}
	lessons := &fakeLessonList{lessons: []model.Lesson{
		lessonItem(1, 9, 30), // 50
		lessonItem(2, 5, 30), // 0
	}}
	svc := newRecSvc(nil, lessons, inter, prof)

	out := svc.GetPersonalizedLessons(7, 0)
	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestLessonScoringIgnoresCategoryAndPopularity(t *testing.T) {
	now := time.Now()
	prefs := &model.UserPreferences{
		FollowedCreatorIDs:  map[uint]bool{},
		TopCategories:       []string{"guard"},
		PreferredDifficulty: model.Intermediate,
		ViewedContentIDs:    map[uint]bool{},
	}
	item := itemFacts{ID: 1, Category: "guard", Difficulty: model.Intermediate,
		CreatedAt: now.AddDate(0, 0, -30), ViewCount: 5000}

	assert.Equal(t, 55, scoreItem(item, prefs, now, drillRules))
	assert.Equal(t, 0, scoreItem(item, prefs, now, lessonRules))
}
