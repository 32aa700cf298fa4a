package models

// 덱에 표시되는 합성 프로필. 생성 후에는 변경되지 않는다.
type Profile struct {
	ID    string   `json:"id" example:"p_0_mgq3x1a2_1"`
	Name  string   `json:"name" example:"Riley"`
	Age   int      `json:"age" example:"27"`
	City  string   `json:"city" example:"Brooklyn"`
	Title string   `json:"title" example:"Product Designer"`
	Bio   string   `json:"bio" example:"Weekend hikes and weekday lattes."`
	Tags  []string `json:"tags"`
	Imgs  []string `json:"imgs"`
	Img   string   `json:"img"`
}

// PhotoCount returns how many photos the profile can cycle through.
func (p Profile) PhotoCount() int {
	return len(p.Imgs)
}
