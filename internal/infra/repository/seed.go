package repository

import "app/internal/domain/model"

// 起動時に投入する初期カタログ。実行中に商品が増減することはない（在庫だけが動く）。
func SeedGames() []model.Game {
	return []model.Game{
		{
			Code:     "0001",
			Name:     "Sekiro",
			Stock:    1,
			Price:    30000,
			Color:    "red",
			Featured: true,
			ImageURL: "https://image.api.playstation.com/vulcan/img/rnd/202010/2723/knxU5uU5aKvQChKX5OvWtSGC.png",
		},
		{
			Code:     "0002",
			Name:     "Fifa 21",
			Stock:    0,
			Price:    25000,
			Color:    "blue",
			Featured: false,
			ImageURL: "https://i.blogs.es/5fe30d/fifa-21-intros_1/1366_2000.jpeg",
		},
		{
			Code:     "0003",
			Name:     "Gears of War 4",
			Stock:    5,
			Price:    15000,
			Color:    "green",
			Featured: true,
			ImageURL: "https://i.blogs.es/fe973b/gearsofwar401/1366_2000.jpg",
		},
		{
			Code:     "0004",
			Name:     "Mario Tennis Aces",
			Stock:    5,
			Price:    35000,
			Color:    "yellow",
			Featured: false,
			ImageURL: "https://i.ytimg.com/vi/7-6UBoyylNU/maxresdefault.jpg",
		},
		{
			Code:     "0005",
			Name:     "Bloodborne",
			Stock:    5,
			Price:    10000,
			Color:    "blue",
			Featured: false,
			ImageURL: "https://depor.com/resizer/dRAIfiPQ387ThVu2opAvI_uvV-g=/1200x800/smart/filters:format(jpeg):quality(75)/cloudfront-us-east-1.images.arcpublishing.com/elcomercio/HI653K7WA5EDBIYTNNNCKR7WIA.jpg",
		},
		{
			Code:     "0006",
			Name:     "Forza Horizon 4",
			Stock:    5,
			Price:    20000,
			Color:    "red",
			Featured: true,
			ImageURL: "https://cdn.cloudflare.steamstatic.com/steam/apps/1293830/extras/FH4_Deluxe_TitledHero_HD_1920x1080.png?t=1622068013",
		},
	}
}
