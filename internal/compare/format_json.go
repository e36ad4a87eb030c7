package compare

import (
	"encoding/json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool
}

// jsonComparison adds the cheapest regime to the serialized set
type jsonComparison struct {
	*ComparisonSet
	CheapestRegime string `json:"cheapest_regime,omitempty"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	payload := jsonComparison{ComparisonSet: compSet}
	if best := compSet.Cheapest(); best != nil {
		payload.CheapestRegime = best.Regime
	}

	marshal := json.Marshal
	if jf.Pretty {
		marshal = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}
	data, err := marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
