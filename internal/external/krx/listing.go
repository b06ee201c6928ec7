package krx

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/wonny/themeleader/internal/contracts"
)

// listingProbeDays bounds the backward probe for a date the portal has data for
const listingProbeDays = 7

// markets queried for the listing, in display order
var listingMarkets = []struct {
	ID   string // KRX mktId
	Name string
}{
	{"STK", "KOSPI"},
	{"KSQ", "KOSDAQ"},
}

// Listing returns all tradable instruments with sector metadata
// ⭐ SSOT: 상장 목록 호출은 이 함수에서만
// KOSPI와 KOSDAQ 업종분류 화면을 합쳐서 돌려준다
func (c *Client) Listing(ctx context.Context) ([]contracts.StockInfo, error) {
	date, err := c.latestListingDate(ctx)
	if err != nil {
		return nil, err
	}

	var all []contracts.StockInfo
	for _, market := range listingMarkets {
		infos, err := c.fetchSectorList(ctx, market.ID, market.Name, date)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", market.Name, err)
		}
		all = append(all, infos...)
	}

	c.logger.WithFields(map[string]interface{}{
		"date":  date,
		"count": len(all),
	}).Debug("Fetched listing")
	return all, nil
}

// fetchSectorList queries the sector classification screen for one market
func (c *Client) fetchSectorList(ctx context.Context, mktID, marketName, date string) ([]contracts.StockInfo, error) {
	form := url.Values{}
	form.Set("bld", bldSectorList)
	form.Set("mktId", mktID)
	form.Set("trdDd", date)
	form.Set("money", "1")

	body, err := c.fetchJSON(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("sector list screen: %w", err)
	}

	var infos []contracts.StockInfo
	gjson.Get(body, "block1").ForEach(func(_, row gjson.Result) bool {
		code := zeroPad(row.Get("ISU_SRT_CD").String())
		name := row.Get("ISU_ABBRV").String()
		if code == "000000" || name == "" {
			return true
		}

		infos = append(infos, contracts.StockInfo{
			Code:      code,
			Name:      name,
			Market:    marketName,
			Sector:    row.Get("IDX_IND_NM").String(),
			Industry:  row.Get("SEC_NM").String(), // 없는 화면도 있어 비어있을 수 있음
			MarketCap: int64(parseNum(row.Get("MKTCAP").String())),
		})
		return true
	})

	return infos, nil
}

// latestListingDate probes backward for the most recent date with quotes.
// 탐색 실패 시 오늘 날짜 (호출부가 빈 목록 흡수)
func (c *Client) latestListingDate(ctx context.Context) (string, error) {
	today := time.Now()
	for i := 0; i < listingProbeDays; i++ {
		date := today.AddDate(0, 0, -i).Format("20060102")
		quotes, err := c.DailySnapshot(ctx, date)
		if err != nil {
			continue
		}
		if len(quotes) > 0 {
			return date, nil
		}
	}
	return today.Format("20060102"), nil
}
