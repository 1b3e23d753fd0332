package cache

import (
	"sync"

	"github.com/redis/go-redis/v9"
	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/pkg/cache"
)

type Flusher func() error

var (
	Stages        *cache.Singular[[]*model.Stage]
	StagesMapByID *cache.Singular[map[int]*model.Stage]

	Weapons        *cache.Singular[[]*model.Weapon]
	WeaponsMapByID *cache.Singular[map[int]*model.Weapon]

	StageAliases  *cache.Singular[[]*model.StageAlias]
	WeaponAliases *cache.Singular[[]*model.WeaponAlias]

	ScenarioByCode *cache.Set[model.Scenario]

	AccountByUserID *cache.Set[model.Account]

	SitemapXML *cache.Singular[[]byte]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		initializeCaches(client)
	})
}

// Delete flushes the named cache; a valid key narrows the flush to one entry
// of a keyed cache.
func Delete(name string, key null.String) error {
	if key.Valid {
		if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	} else {
		if _, ok := SingularFlusherMap[name]; ok {
			if err := SingularFlusherMap[name](); err != nil {
				return err
			}
		} else if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	}
	return nil
}

func initializeCaches(client *redis.Client) {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// stage
	Stages = cache.NewSingular[[]*model.Stage]("stages")
	StagesMapByID = cache.NewSingular[map[int]*model.Stage]("stagesMapById")

	SingularFlusherMap["stages"] = Stages.Flush
	SingularFlusherMap["stagesMapById"] = StagesMapByID.Flush

	// weapon
	Weapons = cache.NewSingular[[]*model.Weapon]("weapons")
	WeaponsMapByID = cache.NewSingular[map[int]*model.Weapon]("weaponsMapById")

	SingularFlusherMap["weapons"] = Weapons.Flush
	SingularFlusherMap["weaponsMapById"] = WeaponsMapByID.Flush

	// alias
	StageAliases = cache.NewSingular[[]*model.StageAlias]("stageAliases")
	WeaponAliases = cache.NewSingular[[]*model.WeaponAlias]("weaponAliases")

	SingularFlusherMap["stageAliases"] = StageAliases.Flush
	SingularFlusherMap["weaponAliases"] = WeaponAliases.Flush

	// scenario
	ScenarioByCode = cache.NewSet[model.Scenario](client, "scenario#code")

	SetMap["scenario#code"] = ScenarioByCode.Flush

	// account
	AccountByUserID = cache.NewSet[model.Account](client, "account#userId")

	SetMap["account#userId"] = AccountByUserID.Flush

	// sitemap
	SitemapXML = cache.NewSingular[[]byte]("sitemapXml")

	SingularFlusherMap["sitemapXml"] = SitemapXML.Flush
}
