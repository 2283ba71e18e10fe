package simulate

import (
	"time"

	"github.com/tripmind/tripmind/internal/app/models"
)

// Canned reply pools for conversational intents. Selection is a
// uniform independent draw per call; immediate repeats are acceptable.
var conversationResponses = map[string][]string{
	"greeting": {
		"您好！我是您的智能旅行助手。有什么可以帮到您的吗？",
		"您好，很高兴为您服务。请问您有什么旅行计划需要帮助？",
		"您好！今天想去哪里旅行呢？我可以帮您规划行程。",
	},
	"farewell": {
		"再见，期待下次为您服务！",
		"祝您有愉快的一天！随时回来咨询旅行计划。",
		"再见！期待帮您规划下一次精彩旅程。",
	},
	"thanks": {
		"不客气，这是我的荣幸！",
		"很高兴能帮到您，有任何旅行问题随时问我。",
		"不用谢，为您提供旅行建议是我的工作。",
	},
	"default": {
		"作为旅行助手，我可以帮您规划行程、推荐景点和提供旅行建议。请告诉我您想去哪里旅行，例如「我想去北京旅游5天」。",
		"我专注于旅行规划服务。如果您有特定的目的地和天数，比如「我想去上海玩3天」，我可以为您制定详细行程。",
		"我最擅长旅行规划。请告诉我您的旅行目的地和时间，我会为您推荐最佳行程。",
	},
}

// cannedItinerary pairs a template reply with its template trip.
type cannedItinerary struct {
	content string
	trip    models.Trip
}

// The template itineraries reused for every simulated travel reply.
// The Beijing structure doubles as the fallback for any knowledge-base
// city without a template of its own (only the destination changes).
var (
	beijingTemplate = cannedItinerary{
		content: "北京是一个历史悠久的城市，有着丰富的文化景点和美食。根据您的需求，我为您规划了一个5天的北京之旅。以下是详细行程：",
		trip: models.Trip{
			Destination: "北京",
			Duration:    "5天4晚",
			TravelType:  "文化观光",
			Days: []models.TripDay{
				{
					Title: "故宫与天安门广场",
					Activities: []models.Activity{
						{
							Time:        "上午 9:00",
							Title:       "天安门广场",
							Description: "参观世界上最大的城市中心广场，感受庄严的氛围。",
							Location:    "北京市东城区",
						},
						{
							Time:        "上午 10:30",
							Title:       "故宫博物院",
							Description: "游览中国明清两代的皇家宫殿，欣赏珍贵文物和宏伟建筑。",
							Location:    "北京市东城区景山前街4号",
						},
						{
							Time:        "下午 14:00",
							Title:       "景山公园",
							Description: "登上景山，俯瞰紫禁城全景，是拍摄全景照片的最佳地点。",
							Location:    "北京市东城区景山前街44号",
						},
					},
				},
				{
					Title: "长城一日游",
					Activities: []models.Activity{
						{
							Time:        "上午 8:00",
							Title:       "出发前往八达岭长城",
							Description: "乘车前往八达岭长城，途中欣赏北京郊区风光。",
							Location:    "从酒店出发",
						},
						{
							Time:        "上午 10:00",
							Title:       "游览八达岭长城",
							Description: "攀登中国最具代表性的长城段落，体验\"不到长城非好汉\"的壮丽。",
							Location:    "北京市延庆区",
						},
					},
				},
			},
			Notes: []string{
				"北京四合院和胡同游览建议请当地导游带领",
				"故宫需要提前网上预约门票",
				"长城游览建议穿舒适的鞋子，带足饮用水",
			},
		},
	}

	shanghaiTemplate = cannedItinerary{
		content: "上海是中国的经济中心，也是一个充满活力和现代化的城市。这座城市融合了传统与现代元素，为游客提供了丰富的体验。以下是我为您规划的上海3天旅行行程：",
		trip: models.Trip{
			Destination: "上海",
			Duration:    "3天2晚",
			TravelType:  "都市体验",
			Days: []models.TripDay{
				{
					Title: "都市景观与历史建筑",
					Activities: []models.Activity{
						{
							Time:        "上午 9:00",
							Title:       "外滩",
							Description: "参观上海最著名的地标，欣赏黄浦江两岸的景色和殖民时期的建筑群。",
							Location:    "上海市黄浦区中山东一路",
						},
						{
							Time:        "下午 13:00",
							Title:       "豫园",
							Description: "游览明代园林，体验传统中国园林艺术，品尝当地小吃。",
							Location:    "上海市黄浦区安仁街218号",
						},
					},
				},
				{
					Title: "现代上海探索",
					Activities: []models.Activity{
						{
							Time:        "上午 10:00",
							Title:       "上海环球金融中心",
							Description: "登上观光台，俯瞰上海全景。",
							Location:    "上海市浦东新区世纪大道100号",
						},
						{
							Time:        "下午 14:00",
							Title:       "南京路步行街",
							Description: "在中国最著名的商业街之一购物和品尝当地美食。",
							Location:    "上海市黄浦区南京东路",
						},
					},
				},
			},
			Notes: []string{
				"上海交通便利，建议使用地铁出行",
				"夏季天气炎热，建议携带防晒用品",
				"尝试当地特色小吃，如小笼包、生煎和蟹黄包",
			},
		},
	}
)

// cloneTrip deep-copies a template so per-reply adjustments never
// mutate the shared template.
func cloneTrip(t models.Trip) *models.Trip {
	out := t
	out.Days = make([]models.TripDay, len(t.Days))
	for i, day := range t.Days {
		out.Days[i] = day
		out.Days[i].Activities = make([]models.Activity, len(day.Activities))
		copy(out.Days[i].Activities, day.Activities)
	}
	out.Notes = make([]string, len(t.Notes))
	copy(out.Notes, t.Notes)
	out.CreatedAt = time.Now()
	return &out
}
