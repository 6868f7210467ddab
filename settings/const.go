package settings

const (
	FOLLOWING_TIME     = 2.0 // seconds
	KPH_TO_MS          = 1 / 3.6
	SAFE_DISTANCE_GAIN = FOLLOWING_TIME * KPH_TO_MS // 5/9 m per km/h

	MAX_SPEED  = 120.0 // km/h
	DECEL_STEP = 5.0   // km/h per adjustment
	ACCEL_STEP = 2.0   // km/h per adjustment

	AMPLE_GAP_RATIO = 1.5 // adjustment threshold
	HOLD_GAP_RATIO  = 1.2 // advisory threshold

	MIN_INPUT_SPEED    = 0.0
	MAX_INPUT_SPEED    = 120.0
	MIN_INPUT_DISTANCE = 0.0
	MAX_INPUT_DISTANCE = 200.0
)

const (
	DEFAULT_LOG_FILE             = "acc_log.txt"
	DEFAULT_DEMO_LOG_FILE        = "demo_log.txt"
	DEFAULT_INTERACTIVE_LOG_FILE = "interactive_log.txt"

	RECORD_BANNER    = "=== ACC Status Record ==="
	RECORD_SEPARATOR = "-------------------------------------"
)
