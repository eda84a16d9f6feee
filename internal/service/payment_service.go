package service

import (
	"bjj_academy_backend/internal/config"
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/internal/util"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// 平台抽成 20%，余下归创作者
const platformSharePercent = 20

const subscriptionPeriodDays = 30

type PaymentService struct {
	Config       *config.Config
	PaymentRepo  *repository.PaymentRepository
	PurchaseRepo *repository.PurchaseRepository
	SubRepo      *repository.SubscriptionRepository
	CourseRepo   *repository.CourseRepository
	DrillRepo    *repository.DrillRepository
	HTTPClient   *http.Client
}

func NewPaymentService(cfg *config.Config, paymentRepo *repository.PaymentRepository, purchaseRepo *repository.PurchaseRepository, subRepo *repository.SubscriptionRepository, courseRepo *repository.CourseRepository, drillRepo *repository.DrillRepository) *PaymentService {
	return &PaymentService{
		Config:       cfg,
		PaymentRepo:  paymentRepo,
		PurchaseRepo: purchaseRepo,
		SubRepo:      subRepo,
		CourseRepo:   courseRepo,
		DrillRepo:    drillRepo,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SplitRevenue 收入分成。平台份额向下取整，余数全部归创作者。
func SplitRevenue(grossCents int) (creatorCents, platformCents int) {
	platformCents = grossCents * platformSharePercent / 100
	creatorCents = grossCents - platformCents
	return creatorCents, platformCents
}

type paypalOrder struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Amount struct {
			CurrencyCode string `json:"currency_code"`
			Value        string `json:"value"`
		} `json:"amount"`
	} `json:"purchase_units"`
}

func (s *PaymentService) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.Config.PayPal.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.Config.PayPal.ClientID, s.Config.PayPal.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal token request failed: %d %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	return tokenResp.AccessToken, nil
}

func (s *PaymentService) fetchOrder(ctx context.Context, orderID string) (*paypalOrder, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.Config.PayPal.BaseURL+"/v2/checkout/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("paypal order lookup failed: %d %s", resp.StatusCode, string(body))
	}

	var order paypalOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// parseAmountCents 金额字符串转美分，避免浮点直接比较
func parseAmountCents(value string) (int, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f * 100)), nil
}

// validateOrder 校验订单状态、币种与金额是否匹配标价
func validateOrder(order *paypalOrder, expectedCents int, currency string) error {
	if order.Status != "COMPLETED" {
		return util.ErrOrderNotCompleted
	}
	if len(order.PurchaseUnits) == 0 {
		return util.ErrOrderAmountMismatch
	}
	unit := order.PurchaseUnits[0]
	if unit.Amount.CurrencyCode != currency {
		return util.ErrOrderAmountMismatch
	}
	paid, err := parseAmountCents(unit.Amount.Value)
	if err != nil {
		return util.ErrOrderAmountMismatch
	}
	if paid != expectedCents {
		return util.ErrOrderAmountMismatch
	}
	return nil
}

func (s *PaymentService) contentPrice(contentType model.ContentType, contentID uint) (priceCents int, creatorID uint, err error) {
	switch contentType {
	case model.ContentTypeCourse:
		course, err := s.CourseRepo.FindByID(contentID)
		if err != nil {
			return 0, 0, err
		}
		return course.PriceCents, course.CreatorID, nil
	case model.ContentTypeDrill:
		drill, err := s.DrillRepo.FindByID(contentID)
		if err != nil {
			return 0, 0, err
		}
		return drill.PriceCents, drill.CreatorID, nil
	default:
		return 0, 0, util.ErrContentNotFound
	}
}

// CapturePurchase 验证 PayPal 订单并落地单次购买。以订单号幂等：
// 同一订单号重复提交直接拒绝。
func (s *PaymentService) CapturePurchase(ctx context.Context, userID uint, orderID string, contentType model.ContentType, contentID uint) (*model.Purchase, error) {
	if _, err := s.PaymentRepo.FindByOrderID(orderID); err == nil {
		return nil, util.ErrOrderAlreadyProcessed
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	priceCents, creatorID, err := s.contentPrice(contentType, contentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	order, err := s.fetchOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := validateOrder(order, priceCents, s.Config.PayPal.Currency); err != nil {
		return nil, err
	}

	creatorCents, platformCents := SplitRevenue(priceCents)
	payment := &model.Payment{
		OrderID:            orderID,
		UserID:             userID,
		CreatorID:          creatorID,
		ContentType:        contentType,
		ContentID:          contentID,
		GrossCents:         priceCents,
		CreatorShareCents:  creatorCents,
		PlatformShareCents: platformCents,
		Currency:           s.Config.PayPal.Currency,
		Status:             model.PaymentCompleted,
	}
	if err := s.PaymentRepo.Create(payment); err != nil {
		return nil, err
	}

	purchase := &model.Purchase{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		OrderID:     orderID,
		AmountCents: priceCents,
		Status:      model.PurchaseCompleted,
	}
	if err := s.PurchaseRepo.Create(purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// VerifySubscription 验证订阅付款并把订阅期顺延 30 天。
// 订阅收入没有单一创作者，全额记为平台份额。
func (s *PaymentService) VerifySubscription(ctx context.Context, userID uint, orderID string, priceCents int) (*model.Subscription, error) {
	if _, err := s.PaymentRepo.FindByOrderID(orderID); err == nil {
		return nil, util.ErrOrderAlreadyProcessed
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	order, err := s.fetchOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := validateOrder(order, priceCents, s.Config.PayPal.Currency); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		OrderID:            orderID,
		UserID:             userID,
		GrossCents:         priceCents,
		PlatformShareCents: priceCents,
		Currency:           s.Config.PayPal.Currency,
		Status:             model.PaymentCompleted,
	}
	if err := s.PaymentRepo.Create(payment); err != nil {
		return nil, err
	}

	periodEnd := time.Now().AddDate(0, 0, subscriptionPeriodDays)
	if err := s.SubRepo.Upsert(userID, periodEnd); err != nil {
		return nil, err
	}
	return &model.Subscription{
		UserID:           userID,
		Status:           model.SubscriptionActive,
		CurrentPeriodEnd: periodEnd,
	}, nil
}
