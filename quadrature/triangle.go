package quadrature

import "github.com/pkg/errors"

type triRule struct {
	points  [][2]float64
	weights []float64
}

// Triangle returns the barycentric quadrature points (a,b) and weights of
// the symmetric triangle rule with the given polynomial order. The third
// barycentric coordinate is 1-a-b. Supported orders: 1, 4, 8, 10 and 12,
// with 1, 6, 16, 25 and 33 points respectively (Dunavant point sets, the
// same tables used by TempestRemap). Weights of each rule sum to 1.
//
// The returned slices are shared immutable tables; callers must not modify
// them.
func Triangle(order int) (points [][2]float64, weights []float64, err error) {
	r, ok := triRules[order]
	if !ok {
		return nil, nil, errors.Wrapf(ErrUnsupportedOrder,
			"triangular order %d (supported 1, 4, 8, 10, 12)", order)
	}
	return r.points, r.weights, nil
}

var triRules = map[int]triRule{
	1: {
		points:  [][2]float64{{1.0 / 3.0, 1.0 / 3.0}},
		weights: []float64{1.0},
	},
	4: {
		points: [][2]float64{
			{0.108103018168070, 0.445948490915965},
			{0.445948490915965, 0.108103018168070},
			{0.445948490915965, 0.445948490915965},
			{0.816847572980458, 0.091576213509771},
			{0.091576213509771, 0.816847572980458},
			{0.091576213509771, 0.091576213509771},
		},
		weights: []float64{
			0.223381589678011, 0.223381589678011, 0.223381589678011,
			0.109951743655322, 0.109951743655322, 0.109951743655322,
		},
	},
	8: {
		points: [][2]float64{
			{0.333333333333333, 0.333333333333333},
			{0.081414823414554, 0.459292588292723},
			{0.459292588292723, 0.081414823414554},
			{0.459292588292723, 0.459292588292723},
			{0.658861384496480, 0.170569307751760},
			{0.170569307751760, 0.658861384496480},
			{0.170569307751760, 0.170569307751760},
			{0.898905543365938, 0.050547228317031},
			{0.050547228317031, 0.898905543365938},
			{0.050547228317031, 0.050547228317031},
			{0.008394777409958, 0.263112829634638},
			{0.263112829634638, 0.008394777409958},
			{0.008394777409958, 0.728492392955404},
			{0.728492392955404, 0.008394777409958},
			{0.263112829634638, 0.728492392955404},
			{0.728492392955404, 0.263112829634638},
		},
		weights: []float64{
			0.144315607677787,
			0.095091634413455, 0.095091634413455, 0.095091634413455,
			0.103217370534718, 0.103217370534718, 0.103217370534718,
			0.032458497623198, 0.032458497623198, 0.032458497623198,
			0.027230314174435, 0.027230314174435, 0.027230314174435,
			0.027230314174435, 0.027230314174435, 0.027230314174435,
		},
	},
	10: {
		points: [][2]float64{
			{0.333333333333333, 0.333333333333333},
			{0.028844733232685, 0.485577633383657},
			{0.485577633383657, 0.028844733232685},
			{0.485577633383657, 0.485577633383657},
			{0.781036849029926, 0.109481575485037},
			{0.109481575485037, 0.781036849029926},
			{0.109481575485037, 0.109481575485037},
			{0.141707219414880, 0.307939838764121},
			{0.307939838764121, 0.141707219414880},
			{0.141707219414880, 0.550352941820999},
			{0.550352941820999, 0.141707219414880},
			{0.307939838764121, 0.550352941820999},
			{0.550352941820999, 0.307939838764121},
			{0.025003534762686, 0.246672560639903},
			{0.246672560639903, 0.025003534762686},
			{0.025003534762686, 0.728323904597411},
			{0.728323904597411, 0.025003534762686},
			{0.246672560639903, 0.728323904597411},
			{0.728323904597411, 0.246672560639903},
			{0.009540815400299, 0.066803251012200},
			{0.066803251012200, 0.009540815400299},
			{0.009540815400299, 0.923655933587500},
			{0.923655933587500, 0.009540815400299},
			{0.066803251012200, 0.923655933587500},
			{0.923655933587500, 0.066803251012200},
		},
		weights: []float64{
			0.090817990382754,
			0.036725957756467, 0.036725957756467, 0.036725957756467,
			0.045321059435528, 0.045321059435528, 0.045321059435528,
			0.072757916845420, 0.072757916845420, 0.072757916845420,
			0.072757916845420, 0.072757916845420, 0.072757916845420,
			0.028327242531057, 0.028327242531057, 0.028327242531057,
			0.028327242531057, 0.028327242531057, 0.028327242531057,
			0.009421666963733, 0.009421666963733, 0.009421666963733,
			0.009421666963733, 0.009421666963733, 0.009421666963733,
		},
	},
	12: {
		points: [][2]float64{
			{0.023565220452390, 0.488217389773805},
			{0.488217389773805, 0.023565220452390},
			{0.488217389773805, 0.488217389773805},
			{0.120551215411079, 0.439724392294460},
			{0.439724392294460, 0.120551215411079},
			{0.439724392294460, 0.439724392294460},
			{0.457579229975768, 0.271210385012116},
			{0.271210385012116, 0.457579229975768},
			{0.271210385012116, 0.271210385012116},
			{0.744847708916828, 0.127576145541586},
			{0.127576145541586, 0.744847708916828},
			{0.127576145541586, 0.127576145541586},
			{0.957365299093579, 0.021317350453210},
			{0.021317350453210, 0.957365299093579},
			{0.021317350453210, 0.021317350453210},
			{0.115343494534698, 0.275713269685514},
			{0.275713269685514, 0.115343494534698},
			{0.115343494534698, 0.608943235779788},
			{0.608943235779788, 0.115343494534698},
			{0.275713269685514, 0.608943235779788},
			{0.608943235779788, 0.275713269685514},
			{0.022838332222257, 0.281325580989940},
			{0.281325580989940, 0.022838332222257},
			{0.022838332222257, 0.695836086787803},
			{0.695836086787803, 0.022838332222257},
			{0.281325580989940, 0.695836086787803},
			{0.695836086787803, 0.281325580989940},
			{0.025734050548330, 0.116251915907597},
			{0.116251915907597, 0.025734050548330},
			{0.025734050548330, 0.858014033544073},
			{0.858014033544073, 0.025734050548330},
			{0.116251915907597, 0.858014033544073},
			{0.858014033544073, 0.116251915907597},
		},
		weights: []float64{
			0.025731066440455, 0.025731066440455, 0.025731066440455,
			0.043692544538038, 0.043692544538038, 0.043692544538038,
			0.062858224217885, 0.062858224217885, 0.062858224217885,
			0.034796112930709, 0.034796112930709, 0.034796112930709,
			0.006166261051559, 0.006166261051559, 0.006166261051559,
			0.040371557766381, 0.040371557766381, 0.040371557766381,
			0.040371557766381, 0.040371557766381, 0.040371557766381,
			0.022356773202303, 0.022356773202303, 0.022356773202303,
			0.022356773202303, 0.022356773202303, 0.022356773202303,
			0.017316231108659, 0.017316231108659, 0.017316231108659,
			0.017316231108659, 0.017316231108659, 0.017316231108659,
		},
	},
}
