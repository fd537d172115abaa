package classifier

// DefaultTable returns the built-in keyword table. Grouped by category;
// order within the table is the substring-match tie-break.
func DefaultTable() *Table {
	return NewTable([]Keyword{
		// Politics & Government
		{"politics", CategoryPolitics},
		{"u.s. politics", CategoryPolitics},
		{"u.s. 2024 elections", CategoryPolitics},
		{"u.s. 2026 elections", CategoryPolitics},
		{"elections", CategoryPolitics},
		{"trump", CategoryPolitics},
		{"biden", CategoryPolitics},
		{"congress", CategoryPolitics},
		{"senate", CategoryPolitics},
		{"president", CategoryPolitics},
		{"government", CategoryPolitics},
		{"democrat", CategoryPolitics},
		{"republican", CategoryPolitics},
		{"white house", CategoryPolitics},

		// Geopolitics & War
		{"geopolitics", CategoryGeopolitics},
		{"russia", CategoryGeopolitics},
		{"russia-ukraine", CategoryGeopolitics},
		{"ukraine", CategoryGeopolitics},
		{"middle east", CategoryGeopolitics},
		{"israel", CategoryGeopolitics},
		{"iran", CategoryGeopolitics},
		{"war", CategoryGeopolitics},
		{"nuclear", CategoryGeopolitics},
		{"north korea", CategoryGeopolitics},
		{"invasion", CategoryGeopolitics},
		{"military", CategoryGeopolitics},
		{"defense", CategoryGeopolitics},
		{"nato", CategoryGeopolitics},

		// Business & Economy
		{"business", CategoryBusiness},
		{"finance", CategoryBusiness},
		{"economics", CategoryBusiness},
		{"trading", CategoryBusiness},
		{"federal reserve", CategoryBusiness},
		{"fed", CategoryBusiness},
		{"interest rates", CategoryBusiness},
		{"inflation", CategoryBusiness},
		{"gdp", CategoryBusiness},
		{"recession", CategoryBusiness},
		{"economy", CategoryBusiness},
		{"banking", CategoryBusiness},
		{"wall street", CategoryBusiness},

		// Stock Market
		{"stocks", CategoryStocks},
		{"stock market", CategoryStocks},
		{"s&p 500", CategoryStocks},
		{"nasdaq", CategoryStocks},
		{"dow jones", CategoryStocks},
		{"apple", CategoryStocks},
		{"microsoft", CategoryStocks},
		{"google", CategoryStocks},
		{"amazon", CategoryStocks},
		{"meta", CategoryStocks},
		{"tesla", CategoryStocks},
		{"nvidia", CategoryStocks},
		{"earnings", CategoryStocks},

		// Crypto
		{"crypto", CategoryCrypto},
		{"blockchain", CategoryCrypto},
		{"defi", CategoryCrypto},
		{"bitcoin", CategoryCrypto},
		{"btc", CategoryCrypto},
		{"ethereum", CategoryCrypto},
		{"eth", CategoryCrypto},
		{"web3", CategoryCrypto},
		{"token", CategoryCrypto},
		{"coin", CategoryCrypto},
		{"nft", CategoryCrypto},
		{"altcoin", CategoryCrypto},
		{"crypto market", CategoryCrypto},

		// Technology
		{"technology", CategoryTechnology},
		{"tech", CategoryTechnology},
		{"tech company", CategoryTechnology},
		{"spacex", CategoryTechnology},
		{"elon", CategoryTechnology},
		{"musk", CategoryTechnology},
		{"innovation", CategoryTechnology},
		{"startup", CategoryTechnology},
		{"big tech", CategoryTechnology},
		{"software", CategoryTechnology},
		{"hardware", CategoryTechnology},

		// AI & Machine Learning
		{"ai", CategoryAI},
		{"artificial intelligence", CategoryAI},
		{"machine learning", CategoryAI},
		{"deep learning", CategoryAI},
		{"chatgpt", CategoryAI},
		{"openai", CategoryAI},
		{"agi", CategoryAI},
		{"automation", CategoryAI},
		{"robotics", CategoryAI},
		{"llm", CategoryAI},
		{"generative ai", CategoryAI},

		// Sports
		{"sports", CategorySports},
		{"nba", CategorySports},
		{"nfl", CategorySports},
		{"nhl", CategorySports},
		{"ufc", CategorySports},
		{"mma", CategorySports},
		{"soccer", CategorySports},
		{"football", CategorySports},
		{"basketball", CategorySports},
		{"baseball", CategorySports},
		{"hockey", CategorySports},
		{"tennis", CategorySports},
		{"golf", CategorySports},
		{"boxing", CategorySports},
		{"wrestling", CategorySports},
		{"olympics", CategorySports},
		{"super bowl", CategorySports},
		{"world cup", CategorySports},
		{"ncaa", CategorySports},
		{"march madness", CategorySports},
		{"champions league", CategorySports},
		{"premier league", CategorySports},
		{"nba finals", CategorySports},
		{"world series", CategorySports},
		{"stanley cup", CategorySports},
		{"wimbledon", CategorySports},

		// Entertainment
		{"entertainment", CategoryEntertainment},
		{"movies", CategoryEntertainment},
		{"film", CategoryEntertainment},
		{"oscar", CategoryEntertainment},
		{"academy awards", CategoryEntertainment},
		{"music", CategoryEntertainment},
		{"grammy", CategoryEntertainment},
		{"tv", CategoryEntertainment},
		{"television", CategoryEntertainment},
		{"streaming", CategoryEntertainment},
		{"netflix", CategoryEntertainment},
		{"celebrity", CategoryEntertainment},
		{"hollywood", CategoryEntertainment},
		{"box office", CategoryEntertainment},

		// Gaming
		{"gaming", CategoryGaming},
		{"esports", CategoryGaming},
		{"video games", CategoryGaming},
		{"playstation", CategoryGaming},
		{"xbox", CategoryGaming},
		{"nintendo", CategoryGaming},
		{"steam", CategoryGaming},
		{"twitch", CategoryGaming},
		{"gaming industry", CategoryGaming},
		{"game awards", CategoryGaming},

		// Science & Space
		{"science", CategoryScience},
		{"space", CategoryScience},
		{"nasa", CategoryScience},
		{"astronomy", CategoryScience},
		{"physics", CategoryScience},
		{"research", CategoryScience},
		{"discovery", CategoryScience},
		{"space exploration", CategoryScience},
		{"mars", CategoryScience},
		{"moon", CategoryScience},

		// Climate & Environment
		{"climate", CategoryClimate},
		{"climate change", CategoryClimate},
		{"weather", CategoryClimate},
		{"environment", CategoryClimate},
		{"temperature", CategoryClimate},
		{"global warming", CategoryClimate},
		{"carbon", CategoryClimate},
		{"energy", CategoryClimate},
		{"renewable energy", CategoryClimate},

		// Health & Medicine
		{"health", CategoryHealth},
		{"medical", CategoryHealth},
		{"pandemic", CategoryHealth},
		{"virus", CategoryHealth},
		{"disease", CategoryHealth},
		{"vaccine", CategoryHealth},
		{"fda", CategoryHealth},
		{"covid", CategoryHealth},
		{"public health", CategoryHealth},
		{"medicine", CategoryHealth},

		// Society & Culture
		{"society", CategorySociety},
		{"culture", CategorySociety},
		{"social", CategorySociety},
		{"social media", CategorySociety},
		{"twitter", CategorySociety},
		{"facebook", CategorySociety},
		{"tiktok", CategorySociety},
		{"influencers", CategorySociety},
		{"trends", CategorySociety},
		{"viral", CategorySociety},
		{"internet", CategorySociety},
	})
}

// CategoryInfo is the static catalog entry served to the UI.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Label       string   `json:"label"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
}

// Catalog lists every category the UI can filter by, "all" first.
func Catalog() []CategoryInfo {
	return []CategoryInfo{
		{CategoryAll, "Trending", "🔥", "最热门的预测市场"},
		{CategoryPolitics, "政治", "🏛️", "美国政治、选举、政府"},
		{CategoryGeopolitics, "地缘政治", "🌍", "国际关系、战争、冲突"},
		{CategoryBusiness, "商业", "💼", "经济、金融、商业"},
		{CategoryStocks, "股市", "📈", "股票、上市公司、财报"},
		{CategoryCrypto, "加密货币", "₿", "比特币、以太坊、DeFi"},
		{CategoryTechnology, "科技", "💻", "大型科技公司、创新"},
		{CategoryAI, "人工智能", "🤖", "AI、机器学习、ChatGPT"},
		{CategorySports, "体育", "⚽", "NBA、NFL、足球等体育赛事"},
		{CategoryEntertainment, "娱乐", "🎬", "电影、音乐、明星"},
		{CategoryGaming, "游戏", "🎮", "电子竞技、游戏行业"},
		{CategoryScience, "科学", "🔬", "太空探索、科研发现"},
		{CategoryClimate, "气候", "🌡️", "气候变化、环境"},
		{CategoryHealth, "健康", "🏥", "医疗健康、疫情"},
		{CategorySociety, "社会", "👥", "社会文化、网络趋势"},
		{CategoryOther, "其他", "📊", "其他分类"},
	}
}
