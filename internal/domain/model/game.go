package model

// カタログの商品（ゲーム）。codeは起動中ずっと一意。
// color / featured / image_url は表示用メタデータで、コアは中身を見ない。
type Game struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Stock    int64  `json:"stock"`
	Price    int64  `json:"price"`
	Color    string `json:"color"`
	Featured bool   `json:"featured"`
	ImageURL string `json:"image_url"`
}
