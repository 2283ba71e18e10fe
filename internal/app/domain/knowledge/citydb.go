package knowledge

// ResourceCounts summarizes a city's tourism resources by category.
type ResourceCounts struct {
	Museums         int `json:"museums"`
	Parks           int `json:"parks"`
	HistoricalSites int `json:"historicalSites"`
	ShoppingAreas   int `json:"shoppingAreas"`
	FoodStreets     int `json:"foodStreets"`
}

// Boundary is a city's geographic center and approximate radius in
// kilometers.
type Boundary struct {
	CenterLat float64 `json:"centerLat"`
	CenterLng float64 `json:"centerLng"`
	RadiusKm  float64 `json:"radiusKm"`
}

// CityInfo is one knowledge-base entry: descriptive intro, resource
// counts, and distinct recommendation lists for first-time and repeat
// visitors.
type CityInfo struct {
	Name        string         `json:"name"`
	Intro       string         `json:"intro"`
	Resources   ResourceCounts `json:"resources"`
	FirstVisit  []string       `json:"firstVisit"`
	RepeatVisit []string       `json:"repeatVisit"`
	Boundary    Boundary       `json:"boundary"`
}

// CityDB is the fixed city knowledge base keyed by city name.
type CityDB struct {
	entries map[string]CityInfo
	order   []string
}

// NewCityDB returns the built-in knowledge base.
func NewCityDB() *CityDB {
	db := &CityDB{entries: make(map[string]CityInfo)}
	for _, info := range builtinCities {
		db.entries[info.Name] = info
		db.order = append(db.order, info.Name)
	}
	return db
}

// Lookup returns the entry for city and whether it exists.
func (db *CityDB) Lookup(city string) (CityInfo, bool) {
	info, ok := db.entries[city]
	return info, ok
}

// Known returns the supported city names in registration order, used
// for clarifying replies that list what the assistant can plan for.
func (db *CityDB) Known() []string {
	out := make([]string, len(db.order))
	copy(out, db.order)
	return out
}

var builtinCities = []CityInfo{
	{
		Name:  "北京",
		Intro: "北京是中国的首都，拥有3000多年的悠久历史和灿烂文化，是世界著名的古都和现代化国际大都市。",
		Resources: ResourceCounts{
			Museums:         148,
			Parks:           226,
			HistoricalSites: 98,
			ShoppingAreas:   52,
			FoodStreets:     37,
		},
		FirstVisit:  []string{"故宫博物院", "天安门广场", "八达岭长城", "颐和园", "天坛公园"},
		RepeatVisit: []string{"798艺术区", "南锣鼓巷", "什刹海", "香山公园", "世界公园"},
		Boundary:    Boundary{CenterLat: 39.9042, CenterLng: 116.4074, RadiusKm: 50},
	},
	{
		Name:  "上海",
		Intro: "上海是中国最大的经济中心城市，国际化大都市，有\"东方巴黎\"和\"东方明珠\"的美誉。",
		Resources: ResourceCounts{
			Museums:         87,
			Parks:           156,
			HistoricalSites: 64,
			ShoppingAreas:   93,
			FoodStreets:     42,
		},
		FirstVisit:  []string{"外滩", "东方明珠", "豫园", "南京路步行街", "上海迪士尼乐园"},
		RepeatVisit: []string{"田子坊", "1933老场坊", "朱家角古镇", "世博会博物馆", "上海野生动物园"},
		Boundary:    Boundary{CenterLat: 31.2304, CenterLng: 121.4737, RadiusKm: 40},
	},
	{
		Name:  "广州",
		Intro: "广州是广东省省会，中国南方最大城市，拥有2200多年历史，被誉为\"千年商都\"。",
		Resources: ResourceCounts{
			Museums:         52,
			Parks:           93,
			HistoricalSites: 78,
			ShoppingAreas:   64,
			FoodStreets:     86,
		},
		FirstVisit:  []string{"陈家祠", "白云山", "沙面岛", "广州塔", "上下九步行街"},
		RepeatVisit: []string{"岭南印象园", "长隆野生动物世界", "广州博物馆", "广州艺术博物院", "花城广场"},
		Boundary:    Boundary{CenterLat: 23.1291, CenterLng: 113.2644, RadiusKm: 35},
	},
	{
		Name:  "成都",
		Intro: "成都是四川省省会，中国西部地区重要的中心城市，有\"天府之国\"的美誉，以熊猫和美食闻名于世。",
		Resources: ResourceCounts{
			Museums:         47,
			Parks:           74,
			HistoricalSites: 56,
			ShoppingAreas:   43,
			FoodStreets:     94,
		},
		FirstVisit:  []string{"成都大熊猫繁育研究基地", "锦里古街", "宽窄巷子", "杜甫草堂", "武侯祠"},
		RepeatVisit: []string{"青城山", "都江堰", "成都博物馆", "望江楼公园", "西岭雪山"},
		Boundary:    Boundary{CenterLat: 30.5728, CenterLng: 104.0668, RadiusKm: 30},
	},
	{
		Name:  "西安",
		Intro: "西安是陕西省省会，中国四大古都之一，拥有3000多年历史，是中华文明和中华民族重要发祥地之一。",
		Resources: ResourceCounts{
			Museums:         68,
			Parks:           45,
			HistoricalSites: 118,
			ShoppingAreas:   37,
			FoodStreets:     62,
		},
		FirstVisit:  []string{"兵马俑", "大雁塔", "城墙", "回民街", "华清宫"},
		RepeatVisit: []string{"大唐芙蓉园", "陕西历史博物馆", "华山", "钟鼓楼", "大明宫国家遗址公园"},
		Boundary:    Boundary{CenterLat: 34.3416, CenterLng: 108.9398, RadiusKm: 25},
	},
}
