/**
* Name: 			generator.go
* Description: 		정적 단어 목록에서 합성 프로필 덱을 생성
 */
package generator

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"SwipeDeck/internal/models"
)

const (
	DefaultCount     = 12
	MaxCount         = 100
	PhotosPerProfile = 3
	tagSamples       = 4
	minAge           = 18
	ageSpan          = 22
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

type Generator struct {
	rng   RNG
	now   func() time.Time
	deals atomic.Uint64
}

func New(rng RNG) *Generator {
	return &Generator{rng: rng, now: time.Now}
}

// WithClock replaces the clock used for profile ids.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate returns count profiles, DefaultCount when count <= 0.
func (g *Generator) Generate(count int) []models.Profile {
	if count <= 0 {
		count = DefaultCount
	}
	// deal 번호로 같은 밀리초의 재생성도 ID가 겹치지 않음
	stamp := strconv.FormatInt(g.now().UnixMilli(), 36) + "_" + strconv.FormatUint(g.deals.Add(1), 36)

	profiles := make([]models.Profile, 0, count)
	for i := range count {
		imgs := g.pickImgs(PhotosPerProfile)
		profiles = append(profiles, models.Profile{
			ID:    fmt.Sprintf("p_%d_%s", i, stamp),
			Name:  g.sample(firstNames),
			Age:   minAge + g.rng.Intn(ageSpan),
			City:  g.sample(cities),
			Title: g.sample(jobs),
			Bio:   g.sample(bios),
			Tags:  g.pickTags(),
			Imgs:  imgs,
			Img:   imgs[0],
		})
	}
	return profiles
}

func (g *Generator) sample(words []string) string {
	return words[g.rng.Intn(len(words))]
}

// 중복 태그는 제거되므로 4개 미만이 될 수 있음
func (g *Generator) pickTags() []string {
	seen := make(map[string]bool, tagSamples)
	tags := make([]string, 0, tagSamples)
	for range tagSamples {
		t := g.sample(tagWords)
		if seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// pickImgs draws up to count distinct photos. The pool is refilled per
// profile, so photos repeat across profiles but never within one.
func (g *Generator) pickImgs(count int) []string {
	pool := make([]string, len(photoSeeds))
	copy(pool, photoSeeds)

	imgs := make([]string, 0, count)
	for i := 0; i < count && len(pool) > 0; i++ {
		idx := g.rng.Intn(len(pool))
		imgs = append(imgs, PhotoURL(pool[idx]))
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return imgs
}

func PhotoURL(seed string) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?auto=format&fit=crop&w=1200&q=80", seed)
}
