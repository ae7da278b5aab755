package httpadapter

import (
	"context"
	"log/slog"

	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/application"
	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/entities"
	httptransport "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/transport/http"
)

type Handler struct {
	Points  application.PointsService
	Rewards application.RewardService
	Logger  *slog.Logger
}

func (h Handler) AwardPointsHandler(
	ctx context.Context,
	caller string,
	req httptransport.AwardPointsRequest,
) (httptransport.AccountResponse, error) {
	account, err := h.Points.AwardPoints(ctx, caller, req.Recipient, req.Amount)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return httptransport.AccountResponse{Status: "success", Data: accountDTO(account)}, nil
}

func (h Handler) DeductPointsHandler(
	ctx context.Context,
	caller string,
	req httptransport.DeductPointsRequest,
) (httptransport.AccountResponse, error) {
	account, err := h.Points.DeductPoints(ctx, caller, req.User, req.Amount)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return httptransport.AccountResponse{Status: "success", Data: accountDTO(account)}, nil
}

func (h Handler) TransferPointsHandler(
	ctx context.Context,
	caller string,
	req httptransport.TransferPointsRequest,
) (httptransport.AccountResponse, error) {
	account, err := h.Points.TransferPoints(ctx, caller, req.Recipient, req.Amount)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return httptransport.AccountResponse{Status: "success", Data: accountDTO(account)}, nil
}

func (h Handler) GetStatsHandler(ctx context.Context, identity string) (httptransport.AccountResponse, error) {
	account, err := h.Points.GetStats(ctx, identity)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return httptransport.AccountResponse{Status: "success", Data: accountDTO(account)}, nil
}

func (h Handler) LedgerTotalsHandler(ctx context.Context) (httptransport.LedgerTotalsResponse, error) {
	totals, err := h.Points.Totals(ctx)
	if err != nil {
		return httptransport.LedgerTotalsResponse{}, err
	}
	resp := httptransport.LedgerTotalsResponse{Status: "success"}
	resp.Data.TotalIssued = totals.TotalIssued
	resp.Data.TotalDeducted = totals.TotalDeducted
	resp.Data.TotalRedeemed = totals.TotalRedeemed
	return resp, nil
}

func (h Handler) CreateRewardHandler(
	ctx context.Context,
	caller string,
	req httptransport.CreateRewardRequest,
) (httptransport.RewardResponse, error) {
	reward, err := h.Rewards.CreateReward(ctx, caller, req.Name, req.Description, req.Cost, req.Quantity)
	if err != nil {
		return httptransport.RewardResponse{}, err
	}
	return httptransport.RewardResponse{Status: "success", Data: rewardDTO(reward)}, nil
}

func (h Handler) SetRewardActiveHandler(
	ctx context.Context,
	caller string,
	rewardID uint64,
	req httptransport.SetRewardActiveRequest,
) (httptransport.RewardResponse, error) {
	reward, err := h.Rewards.SetRewardActive(ctx, caller, rewardID, req.Active)
	if err != nil {
		return httptransport.RewardResponse{}, err
	}
	return httptransport.RewardResponse{Status: "success", Data: rewardDTO(reward)}, nil
}

func (h Handler) RedeemHandler(ctx context.Context, caller string, rewardID uint64) (httptransport.RedemptionResponse, error) {
	redemption, err := h.Rewards.Redeem(ctx, caller, rewardID)
	if err != nil {
		return httptransport.RedemptionResponse{}, err
	}
	return httptransport.RedemptionResponse{Status: "success", Data: redemptionDTO(redemption)}, nil
}

func (h Handler) GetRewardHandler(ctx context.Context, rewardID uint64) (httptransport.RewardResponse, error) {
	reward, err := h.Rewards.GetReward(ctx, rewardID)
	if err != nil {
		return httptransport.RewardResponse{}, err
	}
	return httptransport.RewardResponse{Status: "success", Data: rewardDTO(reward)}, nil
}

func (h Handler) ListRewardsHandler(ctx context.Context, activeOnly bool) (httptransport.RewardListResponse, error) {
	rewards, err := h.Rewards.ListRewards(ctx, activeOnly)
	if err != nil {
		return httptransport.RewardListResponse{}, err
	}
	resp := httptransport.RewardListResponse{
		Status: "success",
		Data:   make([]httptransport.RewardDTO, 0, len(rewards)),
	}
	for _, reward := range rewards {
		resp.Data = append(resp.Data, rewardDTO(reward))
	}
	return resp, nil
}

func (h Handler) ListRedemptionsHandler(ctx context.Context, user string) (httptransport.RedemptionListResponse, error) {
	redemptions, err := h.Rewards.ListRedemptions(ctx, user)
	if err != nil {
		return httptransport.RedemptionListResponse{}, err
	}
	resp := httptransport.RedemptionListResponse{
		Status: "success",
		Data:   make([]httptransport.RedemptionDTO, 0, len(redemptions)),
	}
	for _, redemption := range redemptions {
		resp.Data = append(resp.Data, redemptionDTO(redemption))
	}
	return resp, nil
}

func accountDTO(account entities.PointsAccount) httptransport.AccountDTO {
	return httptransport.AccountDTO{
		Identity:        account.Identity,
		Balance:         account.Balance,
		TotalEarned:     account.TotalEarned,
		TotalSpent:      account.TotalSpent,
		RewardsRedeemed: account.RewardsRedeemed,
		LastActivity:    account.LastActivity,
	}
}

func rewardDTO(reward entities.Reward) httptransport.RewardDTO {
	return httptransport.RewardDTO{
		RewardID:          reward.RewardID,
		Name:              reward.Name,
		Description:       reward.Description,
		Cost:              reward.Cost,
		AvailableQuantity: reward.AvailableQuantity,
		Active:            reward.Active,
		CreatedBy:         reward.CreatedBy,
		CreatedAt:         reward.CreatedAt,
	}
}

func redemptionDTO(redemption entities.Redemption) httptransport.RedemptionDTO {
	return httptransport.RedemptionDTO{
		User:        redemption.User,
		RewardID:    redemption.RewardID,
		Height:      redemption.Height,
		PointsSpent: redemption.PointsSpent,
		Timestamp:   redemption.Timestamp,
	}
}
