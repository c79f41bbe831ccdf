package codeforces

// 官方 api 的统一信封，result 形状随接口变化

type UserInfoResponse struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  []User `json:"result"`
}

type User struct {
	Handle       string `json:"handle"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Organization string `json:"organization"`
	Rating       int    `json:"rating"`
	MaxRating    int    `json:"maxRating"`
	Rank         string `json:"rank"`
	MaxRank      string `json:"maxRank"`
}

type RatingResponse struct {
	Status string         `json:"status"`
	Result []RatingChange `json:"result"`
}

// RatingChange 一场 rated 比赛产生一条记录
type RatingChange struct {
	ContestId int `json:"contestId"`
	NewRating int `json:"newRating"`
}

type StatusResponse struct {
	Status string       `json:"status"`
	Result []Submission `json:"result"`
}

type Submission struct {
	Verdict string  `json:"verdict"`
	Problem Problem `json:"problem"`
}

type Problem struct {
	ContestId int    `json:"contestId"`
	Index     string `json:"index"`
}
