package util

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// 推荐列表默认长度
	DefaultRecommendationLimit = 30

	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

var AllowedImageExtensions = []string{".png", ".jpg", ".jpeg"}
