package spec

import "fmt"

// Default hyperparameters of a DQN agent trained on Atari games
const (
	BatchSize        = 32
	Gamma            = 0.99
	ReplayBufferSize = 1_000_000
	LearningStarts   = 50_000
	LearningFreq     = 4
	FrameHistoryLen  = 4
	TargetUpdateFreq = 10_000
	LearningRate     = 0.00025
	Alpha            = 0.95
	Eps              = 0.01
	MinEps           = 0.1
	MaxSteps         = 40_000_000
	OutputPath       = "experiments"
)

// DeepQ returns the Schema of hyperparameters used to train DQN agents
// on Atari games. Each hyperparameter accepting a range can be set with
// a single value or with a min and max value to sample from.
func DeepQ() *Schema {
	s := NewSchema("Train DQN for playing Pong.\n" +
		"Set hyperparameters with single values or range to sample from.")

	params := []Param{
		{
			Name: "adv_model", Type: BoolType, NArgs: Optional,
			Default: Bool(false), Metavar: "ADVANCED_MODEL",
			Help: "Uses an advanced ConvNet model with LeakyReLU " +
				"activations and dropout instead.",
		},
		{
			Name: "repeat", Type: IntType, NArgs: Optional,
			Default: Int(1), Metavar: "AMOUNT",
			Help: "Amount of times to repeat each experiment",
		},
		{
			Name: "max_steps", Type: IntType, NArgs: One,
			Default: Int(MaxSteps), Metavar: "STEPS",
			Help: "Number of steps applied to each experiment.",
		},
		{
			Name: "lr", Type: FloatType, NArgs: OneOrMore,
			Default: Float(LearningRate), Metavar: "LEARNING_RATE",
			Help: "Learning rate value OR range: min max",
		},
		{
			Name: "batch", Type: IntType, NArgs: OneOrMore,
			Default: Int(BatchSize), Metavar: "BATCH_SIZE",
			Help: "Batch size",
		},
		{
			Name: "gamma", Type: FloatType, NArgs: OneOrMore,
			Default: Float(Gamma), Metavar: "GAMMA",
			Help: "Gamma Value for Bellman Equation Error",
		},
		{
			Name: "replay_size", Type: IntType, NArgs: OneOrMore,
			Default: Int(ReplayBufferSize), Metavar: "REPLAY_BUFFER_SIZE",
			Help: "Replay Buffer Size",
		},
		{
			Name: "learning_start", Type: IntType, NArgs: OneOrMore,
			Default: Int(LearningStarts), Metavar: "LEARNING_RATE_STARTS_AT",
			Help: "Learning step in which the model learning starts",
		},
		{
			Name: "learning_freq", Type: IntType, NArgs: OneOrMore,
			Default: Int(LearningFreq), Metavar: "STEPS_FREQ",
			Help: "Learning frequency: How often Q network is \"taught\" " +
				"and updated",
		},
		{
			Name: "frame_hist", Type: IntType, NArgs: OneOrMore,
			Default: Int(FrameHistoryLen), Metavar: "FRAME_HISTORY_LEN",
			Help: "How many frames back in history each sample contains",
		},
		{
			Name: "target_update_freq", Type: IntType, NArgs: OneOrMore,
			Default: Int(TargetUpdateFreq), Metavar: "STEPS_FREQ",
			Help: "Learning frequency: How often Qtarget network is " +
				"updated to Q",
		},
		{
			Name: "alpha", Type: FloatType, NArgs: OneOrMore,
			Default: Float(Alpha), Metavar: "ALPHA",
			Help: "Hyperparameter for RMSProp optimizer: smoothing constant",
		},
		{
			Name: "eps", Type: FloatType, NArgs: OneOrMore,
			Default: Float(Eps), Metavar: "EPS",
			Help: "Hyperparameter for RMSProp optimizer: term added to the " +
				"denominator to improve numerical stability",
		},
		{
			Name: "min_eps", Type: FloatType, NArgs: OneOrMore,
			Default: Float(MinEps), Metavar: "MIN_EPS",
			Help: "Hyperparameter for determing the minimal exploration rate.",
		},
		{
			Name: "seed", Type: IntType, NArgs: One,
			Default: Int(0), Metavar: "SEED_VALUE",
			Help: "Seed value used for randomization",
		},
		{
			Name: "game", Type: IntType, NArgs: One,
			Default: Int(int(Pong)), Metavar: "GAME_ID",
			Help: "Game to choose from: " + gameHelp(),
		},
		{
			Name: "output", Type: StringType, NArgs: One,
			Default: String(OutputPath), Metavar: "PATH",
			Help: "Output path for trained DQN models and experiments " +
				"statistics",
		},
	}

	for _, p := range params {
		if err := s.Add(p); err != nil {
			panic(fmt.Sprintf("deepQ: could not register %v: %v", p.Name,
				err))
		}
	}

	return s
}

// Game is an Atari game that a DQN agent can be trained on
type Game int

const (
	BeamRider Game = iota
	Breakout
	Enduro
	Pong
	Qbert
	SeaQuest
	SpaceInvaders
)

// String implements the fmt.Stringer interface
func (g Game) String() string {
	switch g {
	case BeamRider:
		return "BeamRider"
	case Breakout:
		return "Breakout"
	case Enduro:
		return "Enduro"
	case Pong:
		return "Pong"
	case Qbert:
		return "Qbert"
	case SeaQuest:
		return "SeaQuest"
	case SpaceInvaders:
		return "SpaceInvaders"
	}
	return fmt.Sprintf("Game(%d)", int(g))
}

// gameHelp lists the game IDs for the help message
func gameHelp() string {
	var help string
	for g := BeamRider; g <= SpaceInvaders; g++ {
		if g > BeamRider {
			help += ", "
		}
		help += fmt.Sprintf("%d: %v", int(g), g)
	}
	return help
}
