package gameserver

import (
	"github.com/cory-johannsen/dicee/internal/advisor"
	"github.com/cory-johannsen/dicee/internal/gameserver/dicev1"
)

// requestFromProto converts a wire request into the advisor's form.
// Availability bits beyond the 16-bit mask are dropped; the advisor ignores
// bits above the last category anyway.
func requestFromProto(in *dicev1.AnalyzeRequest) advisor.Request {
	d := make([]int, len(in.GetDice()))
	for i, v := range in.GetDice() {
		d[i] = int(v)
	}
	return advisor.Request{
		Dice:           d,
		RollsRemaining: int(in.GetRollsRemaining()),
		Available:      uint16(in.GetAvailable()),
	}
}

func requestToProto(req advisor.Request) *dicev1.AnalyzeRequest {
	d := make([]int32, len(req.Dice))
	for i, v := range req.Dice {
		d[i] = int32(v)
	}
	return &dicev1.AnalyzeRequest{
		Dice:           d,
		RollsRemaining: int32(req.RollsRemaining),
		Available:      uint32(req.Available),
	}
}

// responseToProto flattens the optional fields of resp. Category and
// CategoryScore are meaningful only for ActionScore and Keep only for
// ActionReroll.
func responseToProto(resp *advisor.Response) *dicev1.AnalyzeResponse {
	out := &dicev1.AnalyzeResponse{
		RequestId:       resp.RequestID,
		Action:          resp.Action,
		CategoryName:    resp.CategoryName,
		KeepDescription: resp.KeepDescription,
		ExpectedValue:   resp.ExpectedValue,
		Categories:      make([]*dicev1.CategoryResult, len(resp.Categories)),
	}
	if resp.Category != nil {
		out.Category = int32(*resp.Category)
	}
	if resp.CategoryScore != nil {
		out.CategoryScore = int32(*resp.CategoryScore)
	}
	if resp.Keep != nil {
		out.Keep = make([]int32, len(resp.Keep))
		for i, n := range resp.Keep {
			out.Keep[i] = int32(n)
		}
	}
	for i, c := range resp.Categories {
		out.Categories[i] = &dicev1.CategoryResult{
			Category:       int32(c.Category),
			Id:             c.ID,
			Name:           c.Name,
			ImmediateScore: int32(c.ImmediateScore),
			Valid:          c.Valid,
			ExpectedValue:  c.ExpectedValue,
		}
	}
	return out
}

// responseFromProto restores the optional fields from the action.
func responseFromProto(in *dicev1.AnalyzeResponse) *advisor.Response {
	out := &advisor.Response{
		RequestID:       in.GetRequestId(),
		Action:          in.GetAction(),
		CategoryName:    in.GetCategoryName(),
		KeepDescription: in.GetKeepDescription(),
		ExpectedValue:   in.GetExpectedValue(),
		Categories:      make([]advisor.CategoryResult, len(in.GetCategories())),
	}
	switch out.Action {
	case advisor.ActionScore:
		c, s := int(in.GetCategory()), int(in.GetCategoryScore())
		out.Category, out.CategoryScore = &c, &s
	case advisor.ActionReroll:
		if k := in.GetKeep(); len(k) == 6 {
			var keep [6]int
			for i, n := range k {
				keep[i] = int(n)
			}
			out.Keep = &keep
		}
	}
	for i, c := range in.GetCategories() {
		out.Categories[i] = advisor.CategoryResult{
			Category:       int(c.GetCategory()),
			ID:             c.GetId(),
			Name:           c.GetName(),
			ImmediateScore: int(c.GetImmediateScore()),
			Valid:          c.GetValid(),
			ExpectedValue:  c.GetExpectedValue(),
		}
	}
	return out
}

func categoriesToProto(infos []advisor.CategoryInfo) []*dicev1.CategoryInfo {
	out := make([]*dicev1.CategoryInfo, len(infos))
	for i, c := range infos {
		out[i] = &dicev1.CategoryInfo{
			Index:      int32(c.Index),
			Id:         c.ID,
			Name:       c.Name,
			Section:    c.Section,
			FixedScore: int32(c.FixedScore),
		}
	}
	return out
}

func categoriesFromProto(infos []*dicev1.CategoryInfo) []advisor.CategoryInfo {
	out := make([]advisor.CategoryInfo, len(infos))
	for i, c := range infos {
		out[i] = advisor.CategoryInfo{
			Index:      int(c.GetIndex()),
			ID:         c.GetId(),
			Name:       c.GetName(),
			Section:    c.GetSection(),
			FixedScore: int(c.GetFixedScore()),
		}
	}
	return out
}
