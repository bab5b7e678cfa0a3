package warehouse

// The analytics queries are static templates; the only variable part is the
// per-website dataset (schema) name. All session attribution — first country,
// first timestamp, landing page — is derived warehouse-side from the raw event
// stream, and sessions come back already deduplicated by session_uid.

// analyticsQuery unions the still-accumulating intraday partition with the
// finalized daily partitions of the trailing 7 days. minutes_past is real for
// intraday rows and lets the dashboard carve out the last-30-minutes window.
const analyticsQuery = `
WITH combined_events AS (
    SELECT user_pseudo_id, ga_session_id, event_timestamp, country, page_location, traffic_source
    FROM %[1]s.events_intraday

    UNION ALL

    SELECT user_pseudo_id, ga_session_id, event_timestamp, country, page_location, traffic_source
    FROM %[1]s.events
    WHERE event_timestamp >= (CURRENT_DATE - INTERVAL '7 days')
      AND event_timestamp < CURRENT_DATE
),
sessions AS (
    SELECT
        ga_session_id || '_' || user_pseudo_id AS session_uid,
        FIRST_VALUE(country) OVER w AS session_first_country,
        FIRST_VALUE(event_timestamp) OVER w AS session_first_timestamp,
        FIRST_VALUE(page_location) OVER w AS landing_page,
        FIRST_VALUE(traffic_source) OVER w AS session_source
    FROM combined_events
    WINDOW w AS (
        PARTITION BY ga_session_id || '_' || user_pseudo_id
        ORDER BY event_timestamp
        ROWS BETWEEN UNBOUNDED PRECEDING AND UNBOUNDED FOLLOWING
    )
)
SELECT
    landing_page,
    EXTRACT(EPOCH FROM (NOW() - session_first_timestamp))::int / 60 AS minutes_past,
    COALESCE(session_first_country, '(not set)') AS country,
    session_first_timestamp::date AS event_date,
    COALESCE(session_source, '') AS session_source,
    COUNT(DISTINCT session_uid) AS sessions
FROM sessions
GROUP BY landing_page, minutes_past, country, event_date, session_source
`

// historicalAnalyticsQuery is the fallback used when a website has no intraday
// partition yet: daily partitions only, minutes_past pinned to the 1440
// sentinel, plus one synthetic zero row for the current day so the dashboard
// still shows the website as live.
const historicalAnalyticsQuery = `
WITH combined_events AS (
    SELECT user_pseudo_id, ga_session_id, event_timestamp, country, page_location, traffic_source
    FROM %[1]s.events
    WHERE event_timestamp >= (CURRENT_DATE - INTERVAL '7 days')
      AND event_timestamp < CURRENT_DATE
),
sessions AS (
    SELECT
        ga_session_id || '_' || user_pseudo_id AS session_uid,
        FIRST_VALUE(country) OVER w AS session_first_country,
        FIRST_VALUE(event_timestamp) OVER w AS session_first_timestamp,
        FIRST_VALUE(page_location) OVER w AS landing_page,
        FIRST_VALUE(traffic_source) OVER w AS session_source
    FROM combined_events
    WINDOW w AS (
        PARTITION BY ga_session_id || '_' || user_pseudo_id
        ORDER BY event_timestamp
        ROWS BETWEEN UNBOUNDED PRECEDING AND UNBOUNDED FOLLOWING
    )
)
SELECT
    landing_page,
    1440 AS minutes_past,
    COALESCE(session_first_country, '(not set)') AS country,
    session_first_timestamp::date AS event_date,
    COALESCE(session_source, '') AS session_source,
    COUNT(DISTINCT session_uid) AS sessions
FROM sessions
GROUP BY landing_page, country, event_date, session_source

UNION ALL

SELECT '', 30, '', CURRENT_DATE, '', 0
`
