package main

import (
	"net/url"

	"github.com/fwojciec/bulletin"
)

const (
	jungguBase      = "https://www.junggu.seoul.kr/content.do"
	liveinkoreaList = "https://liveinkorea.kr/web/lay1/bbs/S1T10C27/A/4/list.do"
)

// seoulDistricts maps Seoul district area codes on liveinkorea.kr to names.
var seoulDistricts = []struct {
	Code string
	Name string
}{
	{"D001", "종로구"}, {"D002", "중구"}, {"D003", "용산구"}, {"D004", "성동구"}, {"D005", "광진구"},
	{"D006", "동대문구"}, {"D007", "중랑구"}, {"D008", "성북구"}, {"D009", "강북구"}, {"D010", "도봉구"},
	{"D011", "노원구"}, {"D012", "은평구"}, {"D013", "서대문구"}, {"D014", "마포구"}, {"D015", "양천구"},
	{"D016", "강서구"}, {"D017", "구로구"}, {"D018", "금천구"}, {"D019", "영등포구"}, {"D020", "동작구"},
	{"D021", "관악구"}, {"D022", "서초구"}, {"D024", "강남구"}, {"D025", "송파구"}, {"D026", "강동구"},
}

func jungguProfile() bulletin.RenderProfile {
	return bulletin.RenderProfile{
		Content:    []string{"div.board_view_02 td.view_txt", "td.view_txt", "div.view_txt", ".board_view", "article"},
		Heading:    []string{"th.view_tit", "div.board_view_02 h3", "div.board_view h3", "h3"},
		Breadcrumb: ".location, .path",
		Categories: []bulletin.CategoryRule{
			{Contains: "정책", Category: "정책"},
			{Contains: "교육·문화", Category: "교육문화"},
		},
		Remove:       []string{".blind", "script", "style"},
		BreakMarkers: true,
		BreakBullets: true,
	}
}

func jungguView(cmsid, cid string) string {
	q := url.Values{}
	q.Set("cmsid", cmsid)
	q.Set("mode", "view")
	q.Set("cid", cid)
	return jungguBase + "?" + q.Encode()
}

// DefaultSites returns the built-in site catalog.
func DefaultSites() []bulletin.Site {
	policyIDs := []string{
		"1371153241", "1371321624", "1371339757", "1371342445", "1371356544", "1371367132",
		"1371382243", "1371412107", "1371424516", "1371436405", "1375812929",
	}
	var policy []string
	for _, id := range policyIDs {
		policy = append(policy, jungguView("16539", id))
	}

	var districts []bulletin.ListSource
	for _, d := range seoulDistricts {
		q := url.Values{}
		q.Set("search_recruit_stat", "02")
		q.Set("area", "A001")
		q.Set("area_detail", d.Code)
		districts = append(districts, bulletin.ListSource{URL: liveinkoreaList + "?" + q.Encode(), Region: d.Name})
	}

	return []bulletin.Site{
		{
			Name:   "junggu",
			Region: "중구",
			Lists: []bulletin.ListSource{
				{URL: jungguBase + "?cmsid=16539"},
				{URL: jungguBase + "?cmsid=16540"},
			},
			LinkSelector: "a[href*='mode=view'][href*='cid=']",
			PageParam:    "page",
			Render:       jungguProfile(),
		},
		{
			Name:    "junggu-policy",
			Region:  "중구",
			Details: policy,
			Render:  jungguProfile(),
		},
		{
			Name:     "junggu-culture",
			Region:   "중구",
			Category: "교육문화",
			Details:  []string{jungguView("16540", "1371261581")},
			Render:   jungguProfile(),
		},
		{
			Name:         "liveinkorea",
			Region:       "서울",
			Category:     "가족센터",
			Lists:        districts,
			LinkSelector: "a[href*='view.do']",
			PageParam:    "cpage",
			Render: bulletin.RenderProfile{
				Content: []string{"dd.tb_content", "div.tb_content", "dl.tbl_view_type1 dd.tb_content", "div.sub_content", "div.sub_container_inside"},
				Heading: []string{"dt.title_v2"},
				Remove:  []string{".blind", ".icon_zone_warp", ".icon_zone", "script", "style"},
				Info: []bulletin.InfoSelector{{
					Item:  "dd.call_tell",
					Label: "div.date_txt span.date",
					Value: "div.date_txt span.count",
				}},
				Images: "dd.tb_content img, div.tb_content img",
			},
		},
	}
}
