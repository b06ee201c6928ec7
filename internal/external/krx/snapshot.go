package krx

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/wonny/themeleader/internal/contracts"
)

// DailySnapshot returns price/value data for all instruments on a date
// ⭐ SSOT: 전종목 시세 호출은 이 함수에서만
// 휴장일이면 빈 슬라이스 (오류 아님)
func (c *Client) DailySnapshot(ctx context.Context, date string) ([]contracts.DailyQuote, error) {
	body, err := c.fetchDailyTrade(ctx, date)
	if err != nil {
		return nil, err
	}

	var quotes []contracts.DailyQuote
	gjson.Get(body, "OutBlock_1").ForEach(func(_, row gjson.Result) bool {
		code := zeroPad(row.Get("ISU_SRT_CD").String())
		if code == "000000" {
			return true
		}

		closePrice := parseNum(row.Get("TDD_CLSPRC").String())
		if closePrice == 0 {
			// 거래 없는 행 (신규상장 대기 등)은 건너뜀
			return true
		}

		quotes = append(quotes, contracts.DailyQuote{
			Code:         code,
			ClosePrice:   closePrice,
			ChangePct:    parseNum(row.Get("FLUC_RT").String()),
			TradingValue: parseNum(row.Get("ACC_TRDVAL").String()),
		})
		return true
	})

	c.logger.WithFields(map[string]interface{}{
		"date":  date,
		"count": len(quotes),
	}).Debug("Fetched daily snapshot")
	return quotes, nil
}

// MarketCapSnapshot returns market caps for all instruments on a date
// ⭐ SSOT: 전종목 시가총액 호출은 이 함수에서만
func (c *Client) MarketCapSnapshot(ctx context.Context, date string) ([]contracts.MarketCap, error) {
	body, err := c.fetchDailyTrade(ctx, date)
	if err != nil {
		return nil, err
	}

	var caps []contracts.MarketCap
	gjson.Get(body, "OutBlock_1").ForEach(func(_, row gjson.Result) bool {
		code := zeroPad(row.Get("ISU_SRT_CD").String())
		if code == "000000" {
			return true
		}

		marketCap := int64(parseNum(row.Get("MKTCAP").String()))
		if marketCap == 0 {
			return true
		}

		caps = append(caps, contracts.MarketCap{
			Code:      code,
			MarketCap: marketCap,
		})
		return true
	})

	c.logger.WithFields(map[string]interface{}{
		"date":  date,
		"count": len(caps),
	}).Debug("Fetched market cap snapshot")
	return caps, nil
}

// fetchDailyTrade queries the all-instrument daily trade screen
func (c *Client) fetchDailyTrade(ctx context.Context, date string) (string, error) {
	form := url.Values{}
	form.Set("bld", bldDailyTrade)
	form.Set("mktId", "ALL")
	form.Set("trdDd", date)
	form.Set("share", "1")
	form.Set("money", "1")

	body, err := c.fetchJSON(ctx, form)
	if err != nil {
		return "", fmt.Errorf("daily trade screen: %w", err)
	}
	return body, nil
}
