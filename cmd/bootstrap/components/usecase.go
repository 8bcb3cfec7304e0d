package components

import (
	"referral-rewards/internal/domain/referral"
	"referral-rewards/internal/pkg/clock"
	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/usecase/commands"
	"referral-rewards/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewRewardPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRewardUseCase,
		commands.NewInventoryUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVoucherQueries,
		queries.NewLedgerQueries,
	),
)

// NewRewardPolicy fails startup on a policy that could never reward anyone.
func NewRewardPolicy(cfg config.Config) (*referral.Policy, error) {
	return referral.NewPolicy(
		cfg.Reward.EnrolledGroups,
		cfg.Reward.ReferrerVouchers,
		cfg.Reward.NewMemberVouchers,
		cfg.Reward.RecordUnreferredJoins,
	)
}
